package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/response"
	"bulletin-board-api/internal/service"
)

// BoardHandler handles board-related requests
type BoardHandler struct {
	boardService service.BoardService
	logger       *zap.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// ListBoards godoc
// @Summary      게시글 목록 조회
// @Description  최신순으로 게시글 목록을 페이지 단위로 조회합니다
// @Description  option(title, content, writer)과 keyword를 함께 주면 부분 일치 검색을 합니다
// @Tags         boards
// @Produce      json
// @Param        page query int false "페이지 번호 (0부터 시작)" default(0)
// @Param        size query int false "페이지 크기 (1-100)" default(10)
// @Param        option query string false "검색 대상" Enums(title, content, writer)
// @Param        keyword query string false "검색어"
// @Success      200 {object} dto.BoardListResponse "게시글 목록"
// @Failure      400 {object} response.ErrorResponse "잘못된 페이지 파라미터"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /board/list [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	page, err := dto.ParsePageRequest(c.Query("page"), c.Query("size"), dto.DefaultBoardPageSize)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	search := dto.BoardSearch{
		Option:  c.Query("option"),
		Keyword: c.Query("keyword"),
	}

	result, err := h.boardService.ListBoards(c.Request.Context(), search, page)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBoard godoc
// @Summary      게시글 상세 조회
// @Description  작성자 정보와 첨부 파일 목록을 포함한 게시글을 조회합니다
// @Tags         boards
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Success      200 {object} dto.BoardDetailResponse "게시글 상세"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없습니다."
// @Router       /board/{id} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoardDetail(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// WriteBoard godoc
// @Summary      게시글 작성
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.WriteBoardRequest true "게시글 작성 요청"
// @Success      201 {object} dto.WriteBoardResponse "생성된 게시글 ID"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청 또는 존재하지 않는 작성자"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /board/write [post]
func (h *BoardHandler) WriteBoard(c *gin.Context) {
	var req dto.WriteBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.boardService.WriteBoard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdateBoard godoc
// @Summary      게시글 수정
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Param        request body dto.UpdateBoardRequest true "게시글 수정 요청"
// @Success      200 {object} dto.UpdateBoardResponse "게시글이 성공적으로 수정되었습니다."
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없습니다."
// @Router       /board/{id}/update [patch]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.boardService.UpdateBoard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteBoard godoc
// @Summary      게시글 삭제
// @Description  게시글과 댓글, 첨부 파일을 함께 삭제합니다
// @Tags         boards
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Success      200 {object} response.MessageResponse "게시글이 성공적으로 삭제되었습니다."
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없습니다."
// @Router       /board/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), boardID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, true, "게시글이 성공적으로 삭제되었습니다.")
}

// IncrementViewCount godoc
// @Summary      조회수 증가
// @Tags         boards
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Success      200 {object} response.MessageResponse "조회수가 증가했습니다."
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없습니다."
// @Router       /board/{id}/increment-view [post]
func (h *BoardHandler) IncrementViewCount(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.boardService.IncrementViewCount(c.Request.Context(), boardID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, true, "조회수가 증가했습니다.")
}
