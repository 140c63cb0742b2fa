// Package handler provides HTTP request handlers for the API.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/response"
	"bulletin-board-api/internal/service"
)

// MemberHandler handles member account requests
type MemberHandler struct {
	memberService service.MemberService
	logger        *zap.Logger
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService service.MemberService, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		logger:        logger,
	}
}

// Register godoc
// @Summary      회원가입
// @Description  이메일, 사용자명, 비밀번호로 회원을 등록합니다. 이미 존재하는 이메일이면 400을 반환합니다
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "회원가입 요청"
// @Success      201 {object} response.MessageResponse "Registration successful"
// @Failure      400 {object} response.ErrorResponse "Email already exists"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /register [post]
func (h *MemberHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.memberService.Register(c.Request.Context(), &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusCreated, true, "Registration successful")
}

// Login godoc
// @Summary      로그인
// @Description  사용자명과 비밀번호를 확인하고 회원 정보를 반환합니다
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "로그인 요청"
// @Success      200 {object} dto.LoginResponse "Login successful"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "Invalid username or password"
// @Failure      429 {object} response.ErrorResponse "로그인 시도 횟수 초과"
// @Router       /login [post]
func (h *MemberHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    *member,
	})
}

// VerifyPassword godoc
// @Summary      비밀번호 확인
// @Description  이메일에 해당하는 회원의 비밀번호가 일치하는지 확인합니다
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body dto.VerifyPasswordRequest true "비밀번호 확인 요청"
// @Success      200 {object} response.MessageResponse "비밀번호가 일치합니다."
// @Failure      401 {object} response.MessageResponse "비밀번호가 일치하지 않습니다."
// @Router       /member/verify-password [post]
func (h *MemberHandler) VerifyPassword(c *gin.Context) {
	var req dto.VerifyPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	ok, err := h.memberService.VerifyPassword(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	if !ok {
		response.SendMessage(c, http.StatusUnauthorized, false, "비밀번호가 일치하지 않습니다.")
		return
	}

	response.SendMessage(c, http.StatusOK, true, "비밀번호가 일치합니다.")
}

// UpdateUsername godoc
// @Summary      사용자명 변경
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateUsernameRequest true "사용자명 변경 요청"
// @Success      200 {object} response.MessageResponse "사용자명이 성공적으로 변경되었습니다."
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "회원을 찾을 수 없음"
// @Router       /member/update-username [patch]
func (h *MemberHandler) UpdateUsername(c *gin.Context) {
	var req dto.UpdateUsernameRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.memberService.UpdateUsername(c.Request.Context(), &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, true, "사용자명이 성공적으로 변경되었습니다.")
}

// DeleteMember godoc
// @Summary      회원 탈퇴
// @Description  회원을 삭제합니다. 작성한 댓글은 삭제되고 게시글은 작성자 없이 남습니다
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body dto.DeleteMemberRequest true "회원 탈퇴 요청"
// @Success      200 {object} response.MessageResponse "회원 탈퇴가 성공적으로 처리되었습니다."
// @Failure      404 {object} response.ErrorResponse "회원을 찾을 수 없음"
// @Router       /member/delete [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	var req dto.DeleteMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), req.Email); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, true, "회원 탈퇴가 성공적으로 처리되었습니다.")
}
