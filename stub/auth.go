package stub

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/octabyte/smartsaas-go/models"
	utilscontext "github.com/octabyte/smartsaas-go/utils/context"
)

type credentialsPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func currentUser(c echo.Context) models.User {
	user, _ := utilscontext.GetUserFromContext(c.Request().Context())
	return user
}

func (s *Server) handleRegister(c echo.Context) error {
	var req credentialsPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Email and password are required"})
	}

	user, err := s.state.createUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Email already registered"})
		}
		return err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return err
	}

	log.Infof("registered user %s", user.Email)
	return c.JSON(http.StatusOK, models.AuthResponse{AccessToken: token, User: user})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req credentialsPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Email and password are required"})
	}

	user, err := s.state.authenticate(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid email or password"})
	}

	token, err := s.issueToken(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.AuthResponse{AccessToken: token, User: user})
}

func (s *Server) handleUserInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}
