package metrics

// IncrementMemberRegistered increments the registration counter
func (m *Metrics) IncrementMemberRegistered() {
	m.safeExecute("IncrementMemberRegistered", func() {
		m.MemberRegisteredTotal.Inc()
	})
}

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// AddFilesUploaded adds n to the uploaded file counter
func (m *Metrics) AddFilesUploaded(n int) {
	m.safeExecute("AddFilesUploaded", func() {
		m.FileUploadedTotal.Add(float64(n))
	})
}

// IncrementLoginFailed increments the rejected login counter
func (m *Metrics) IncrementLoginFailed() {
	m.safeExecute("IncrementLoginFailed", func() {
		m.LoginFailedTotal.Inc()
	})
}

// AddOrphanFilesDeleted adds n to the cleanup counter
func (m *Metrics) AddOrphanFilesDeleted(n int) {
	m.safeExecute("AddOrphanFilesDeleted", func() {
		m.OrphanFilesDeleted.Add(float64(n))
	})
}

// SetMembersTotal sets total members gauge
func (m *Metrics) SetMembersTotal(count int64) {
	m.safeExecute("SetMembersTotal", func() {
		m.MembersTotal.Set(float64(count))
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}

// SetFilesTotal sets total files gauge
func (m *Metrics) SetFilesTotal(count int64) {
	m.safeExecute("SetFilesTotal", func() {
		m.FilesTotal.Set(float64(count))
	})
}
