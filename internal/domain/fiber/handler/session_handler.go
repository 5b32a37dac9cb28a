package handler

import (
	"strings"

	"github.com/fadilmartias/interview-engine/internal/dto"
	"github.com/fadilmartias/interview-engine/internal/middleware"
	"github.com/fadilmartias/interview-engine/internal/response"
	"github.com/fadilmartias/interview-engine/internal/usecase"
	"github.com/fadilmartias/interview-engine/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	uc *usecase.SessionUsecase
}

func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/interviews/:id/sessions", middleware.RequireOwner(), h.Start)

	r := app.Group("/sessions", middleware.RequireOwner())
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Get("/:id/question", h.CurrentQuestion)
	r.Get("/:id/answers", h.ListAnswers)
	r.Put("/:id/answers/:index", h.SubmitAnswer)
	r.Post("/:id/advance", h.Advance)
	r.Post("/:id/complete", h.Complete)
}

func (h *SessionHandler) Start(c *fiber.Ctx) error {
	owner := ownerID(c)

	session, question, err := h.uc.Start(owner, c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to start session",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Session started",
		Data: dto.StartSessionResponse{
			Session:  dto.NewSessionDTO(session),
			Question: dto.NewQuestionDTO(question),
		},
	})
}

func (h *SessionHandler) Get(c *fiber.Ctx) error {
	owner := ownerID(c)

	session, err := h.uc.Get(c.Params("id"), owner)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "session not found",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get session",
		Data:    dto.NewSessionDTO(session),
	})
}

func (h *SessionHandler) List(c *fiber.Ctx) error {
	owner := ownerID(c)

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	sessions, total, err := h.uc.List(owner, page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list sessions",
		}, err)
	}

	data := make([]dto.SessionDTO, 0, len(sessions))
	for i := range sessions {
		data = append(data, dto.NewSessionDTO(&sessions[i]))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list sessions",
		Data:       data,
		Pagination: response.NewPagination(page, pageSize, total, len(data)),
	})
}

func (h *SessionHandler) CurrentQuestion(c *fiber.Ctx) error {
	owner := ownerID(c)

	question, err := h.uc.CurrentQuestion(c.Params("id"), owner)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get current question",
		}, err)
	}

	// question is null once the cursor is past the last index
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get current question",
		Data:    fiber.Map{"question": dto.NewQuestionDTO(question)},
	})
}

func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	owner := ownerID(c)

	index, err := c.ParamsInt("index")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "question index must be an integer",
		}, err)
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if strings.TrimSpace(req.Transcription) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "transcription is required",
		})
	}

	answer, err := h.uc.SubmitAnswer(c.Params("id"), owner, index, req.Transcription)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit answer",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Answer recorded",
		Data:    dto.NewAnswerDTO(answer),
	})
}

func (h *SessionHandler) Advance(c *fiber.Ctx) error {
	owner := ownerID(c)

	session, question, err := h.uc.Advance(c.Params("id"), owner)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to advance session",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Session advanced",
		Data: dto.AdvanceResponse{
			Session:  dto.NewSessionDTO(session),
			Question: dto.NewQuestionDTO(question),
		},
	})
}

func (h *SessionHandler) Complete(c *fiber.Ctx) error {
	owner := ownerID(c)

	session, answers, err := h.uc.Complete(c.Context(), c.Params("id"), owner)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to complete session",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Session completed",
		Data: dto.CompleteSessionResponse{
			Session: dto.NewSessionDTO(session),
			Answers: dto.NewAnswerDTOs(answers),
		},
	})
}

func (h *SessionHandler) ListAnswers(c *fiber.Ctx) error {
	owner := ownerID(c)

	answers, err := h.uc.ListAnswers(c.Params("id"), owner)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list answers",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list answers",
		Data:    dto.NewAnswerDTOs(answers),
	})
}
