package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/config"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/model"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/repository"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/utils"
)

// UserStore is the slice of the store the account endpoints need.
// *repository.UserRepo implements it.
type UserStore interface {
	Create(ctx context.Context, email, password, username, phone string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// dummyHash is a valid bcrypt digest compared against when login hits an
// unknown email, so the handler does the same amount of work whether or not
// the user exists.  The compare result is discarded.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthHandler bundles dependencies for the signup and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

type signupReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phonenumber"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /signup.  Email and phone uniqueness are both checked
// before insertion and each collision reports which field was already used.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if req.Email == "" || req.Password == "" || req.Username == "" || req.PhoneNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password, username and phonenumber are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	_, err := h.Users.Create(ctx, req.Email, req.Password, req.Username, req.PhoneNumber, h.Cfg.BcryptCost)
	if err != nil {
		switch err {
		case repository.ErrEmailExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "Email already used"})
		case repository.ErrPhoneExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "Phone number already used"})
		}
		c.Logger().Errorf("signup: %v", err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Sign up successful", "success": true})
}

// Login handles POST /login.  A missing user and a wrong password produce
// identical responses so the endpoint leaks nothing about which half failed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.VerifyPassword(dummyHash, req.Password)
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Username or password incorrect"})
		}
		c.Logger().Errorf("login: %v", err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Username or password incorrect"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.SecretKey, u.ID, u.Username, u.Email, h.Cfg.TokenTTLMin)
	if err != nil {
		c.Logger().Errorf("sign token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"success": true,
		"token":   tok.Token,
	})
}
