package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"blogicum/internal/forms"
	"blogicum/internal/models"
	"blogicum/internal/utils"
)

type AuthHandler struct {
	repo Repository
}

func NewAuthHandler(repo Repository) *AuthHandler {
	return &AuthHandler{repo: repo}
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", gin.H{
		"Title": "Sign up",
		"Form":  forms.SignupForm{},
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var form forms.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title":  "Sign up",
			"Form":   form,
			"Errors": map[string]string{"form": "Invalid input."},
		})
		return
	}
	if errs := forms.Validate(&form); len(errs) > 0 {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title":  "Sign up",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		Render(c, http.StatusInternalServerError, "auth/register.html", gin.H{
			"Title":  "Sign up",
			"Form":   form,
			"Errors": map[string]string{"form": "Could not create the account."},
		})
		return
	}

	user := models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: hash,
	}
	if err := h.repo.CreateUser(&user); err != nil {
		Render(c, http.StatusConflict, "auth/register.html", gin.H{
			"Title":  "Sign up",
			"Form":   form,
			"Errors": map[string]string{"form": "That username or email is already registered."},
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title": "Log in",
		"Form":  forms.LoginForm{},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusBadRequest, "auth/login.html", gin.H{
			"Title":  "Log in",
			"Form":   form,
			"Errors": map[string]string{"form": "Invalid input."},
		})
		return
	}

	user, err := h.repo.GetUserByEmail(form.Email)
	if err != nil || !utils.CheckPasswordHash(form.Password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title":  "Log in",
			"Form":   form,
			"Errors": map[string]string{"form": "Wrong email or password."},
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
