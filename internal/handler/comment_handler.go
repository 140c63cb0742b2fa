package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/response"
	"bulletin-board-api/internal/service"
)

// HeaderUserID carries the id of the member writing a comment
const HeaderUserID = "User-ID"

// CommentHandler handles comment-related requests
type CommentHandler struct {
	commentService service.CommentService
	logger         *zap.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// ListComments godoc
// @Summary      댓글 목록 조회
// @Description  게시글의 댓글을 최신순으로 페이지 단위로 조회합니다
// @Tags         comments
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Param        page query int false "페이지 번호 (0부터 시작)" default(0)
// @Param        pageSize query int false "페이지 크기 (1-100)" default(5)
// @Success      200 {object} dto.CommentListResponse "댓글 목록"
// @Failure      400 {object} response.ErrorResponse "잘못된 파라미터"
// @Router       /board/{id}/comment/list [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}

	page, err := dto.ParsePageRequest(c.Query("page"), c.Query("pageSize"), dto.DefaultCommentPageSize)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	result, err := h.commentService.ListComments(c.Request.Context(), boardID, page)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// WriteComment godoc
// @Summary      댓글 작성
// @Description  User-ID 헤더의 회원이 게시글에 댓글을 작성합니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Param        User-ID header int true "작성자 회원 ID"
// @Param        request body dto.WriteCommentRequest true "댓글 작성 요청"
// @Success      201 {object} response.MessageResponse "댓글이 성공적으로 등록되었습니다."
// @Failure      400 {object} response.ErrorResponse "User ID is required"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없습니다."
// @Router       /board/{id}/comment/write [post]
func (h *CommentHandler) WriteComment(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}

	userID, err := strconv.ParseUint(strings.TrimSpace(c.GetHeader(HeaderUserID)), 10, 64)
	if err != nil || userID == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "User ID is required")
		return
	}

	var req dto.WriteCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.commentService.WriteComment(c.Request.Context(), boardID, uint(userID), &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusCreated, true, "댓글이 성공적으로 등록되었습니다.")
}

// UpdateComment godoc
// @Summary      댓글 수정
// @Description  user_email의 회원이 작성한 댓글만 수정할 수 있습니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Param        cid path int true "댓글 ID"
// @Param        request body dto.UpdateCommentRequest true "댓글 수정 요청"
// @Success      200 {object} response.MessageResponse "댓글이 성공적으로 수정되었습니다."
// @Failure      403 {object} response.ErrorResponse "댓글 수정 권한이 없습니다."
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없습니다."
// @Router       /board/{id}/comment/update/{cid} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "cid")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.commentService.UpdateComment(c.Request.Context(), boardID, commentID, &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, true, "댓글이 성공적으로 수정되었습니다.")
}

// DeleteComment godoc
// @Summary      댓글 삭제
// @Description  user_email의 회원이 작성한 댓글만 삭제할 수 있습니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Param        cid path int true "댓글 ID"
// @Param        request body dto.DeleteCommentRequest true "댓글 삭제 요청"
// @Success      200 {object} response.MessageResponse "댓글이 성공적으로 삭제되었습니다."
// @Failure      403 {object} response.ErrorResponse "댓글 삭제 권한이 없습니다."
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없습니다."
// @Router       /board/{id}/comment/delete/{cid} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "cid")
	if !ok {
		return
	}

	var req dto.DeleteCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), boardID, commentID, req.UserEmail); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, true, "댓글이 성공적으로 삭제되었습니다.")
}
