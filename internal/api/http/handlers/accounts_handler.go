package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-api/internal/api/dto"
	"github.com/spec-kit/movie-api/internal/service"
	apperrors "github.com/spec-kit/movie-api/pkg/util/errorutil"
)

// AccountsHandler exposes account and favorites endpoints.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accounts *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accounts}
}

// Register handles POST /users.
func (h *AccountsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	birthday, err := dto.ParseDate(req.Birthday)
	if err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"Birthday": err.Error()})
	}

	account, err := h.accounts.Register(c.UserContext(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: birthday,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAccountResponse(account))
}

// List handles GET /users.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	accounts, err := h.accounts.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAccountList(accounts))
}

// Get handles GET /users/:username.
func (h *AccountsHandler) Get(c *fiber.Ctx) error {
	account, err := h.accounts.Get(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAccountResponse(account))
}

// Update handles PUT /users/:username.
func (h *AccountsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.UpdateInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if req.Birthday != nil {
		birthday, err := dto.ParseDate(*req.Birthday)
		if err != nil {
			return apperrors.NewValidationError("invalid payload", map[string]any{"Birthday": err.Error()})
		}
		input.Birthday = birthday
	}

	account, err := h.accounts.Update(c.UserContext(), c.Params("username"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAccountResponse(account))
}

// Delete handles DELETE /users/:username.
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.accounts.Delete(c.UserContext(), username); err != nil {
		return err
	}
	return c.SendString(fmt.Sprintf("%s was deleted.", username))
}

// AddFavorite handles POST /users/:username/movies/:movieID.
func (h *AccountsHandler) AddFavorite(c *fiber.Ctx) error {
	account, err := h.accounts.AddFavorite(c.UserContext(), c.Params("username"), c.Params("movieID"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAccountResponse(account))
}

// RemoveFavorite handles DELETE /users/:username/movies/:movieID.
func (h *AccountsHandler) RemoveFavorite(c *fiber.Ctx) error {
	account, err := h.accounts.RemoveFavorite(c.UserContext(), c.Params("username"), c.Params("movieID"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAccountResponse(account))
}
