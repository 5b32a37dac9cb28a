package handler

import (
	"github.com/fadilmartias/interview-engine/internal/dto"
	"github.com/fadilmartias/interview-engine/internal/middleware"
	"github.com/fadilmartias/interview-engine/internal/response"
	"github.com/fadilmartias/interview-engine/internal/usecase"
	"github.com/fadilmartias/interview-engine/internal/util"
	"github.com/gofiber/fiber/v2"
)

// ownerID reads the owner the RequireOwner middleware resolved for this
// request.
func ownerID(c *fiber.Ctx) string {
	owner, _ := c.Locals(middleware.OwnerLocal).(string)
	return owner
}

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	r := app.Group("/interviews", middleware.RequireOwner())
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	owner := ownerID(c)

	var req dto.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	interview, err := h.uc.Create(c.Context(), owner, req.Skills, req.QuestionsPerSkill, req.Difficulty, req.Context)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create interview",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Interview created",
		Data:    dto.NewInterviewDTO(interview),
	})
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	owner := ownerID(c)

	interview, err := h.uc.Get(owner, c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "interview not found",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview",
		Data:    dto.NewInterviewDTO(interview),
	})
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	owner := ownerID(c)

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	interviews, total, err := h.uc.List(owner, page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list interviews",
		}, err)
	}

	data := make([]dto.InterviewDTO, 0, len(interviews))
	for i := range interviews {
		data = append(data, dto.NewInterviewDTO(&interviews[i]))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list interviews",
		Data:       data,
		Pagination: response.NewPagination(page, pageSize, total, len(data)),
	})
}
