package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luxefurnish/furnishbackend/dto"
	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/store"
	"github.com/luxefurnish/furnishbackend/utils"
)

func findUserByEmail(ctx context.Context, s *store.Store, email string) (models.User, bool) {
	users, err := s.Users.Filter(ctx, store.Query{"email": email}, "", 0)
	if err != nil {
		return models.User{}, false
	}
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func findRefreshToken(ctx context.Context, s *store.Store, hash string) (models.RefreshToken, bool) {
	tokens, err := s.RefreshTokens.Filter(ctx, store.Query{"token_hash": hash}, "", 0)
	if err != nil {
		return models.RefreshToken{}, false
	}
	for _, t := range tokens {
		if t.TokenHash == hash {
			return t, true
		}
	}
	return models.RefreshToken{}, false
}

func refreshTokenAlive(t models.RefreshToken) bool {
	if t.RevokedAt != nil {
		return false
	}
	exp, err := time.Parse(time.RFC3339, t.ExpiresAt)
	if err != nil {
		return false
	}
	return exp.After(time.Now().UTC())
}

func Login(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, ok := findUserByEmail(ctx, s, body.Email)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if err := utils.CheckPassword(user.PasswordHash, body.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			return
		}

		accessToken, _ := utils.GenerateAccessToken(user.Id, user.Email, string(user.Role), utils.AccessTTL())
		refreshToken, _ := utils.GenerateRefreshToken(user.Id)

		_, err := s.RefreshTokens.Create(ctx, models.RefreshToken{
			UserId:    user.Id,
			TokenHash: refreshToken,
			ExpiresAt: time.Now().UTC().Add(utils.RefreshTTL()).Format(time.RFC3339),
		})
		if err != nil {
			log.Print("storing refresh token failed: ", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "connection failed"})
			return
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:     "refreshToken",
			Value:    refreshToken,
			Path:     "/auth/refresh",
			MaxAge:   int(utils.RefreshTTL().Seconds()),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode, // for cross-site
		})
		c.JSON(http.StatusOK, gin.H{
			"access_token": accessToken,
		})
	}
}

func Refresh(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		hash, err := c.Cookie("refreshToken")
		if err != nil || hash == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing refresh token"})
			return
		}

		rt, ok := findRefreshToken(ctx, s, hash)
		if !ok || !refreshTokenAlive(rt) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}

		user, err := s.Users.Get(ctx, rt.UserId)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			return
		}

		// Rotate refresh token
		newHash, err := utils.GenerateRefreshToken(user.Id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
			return
		}

		now := time.Now().UTC().Format(time.RFC3339)
		_, err = s.RefreshTokens.Update(ctx, rt.Id, func(t *models.RefreshToken) {
			t.RevokedAt = &now
			t.ReplacedBy = &newHash
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke refresh token"})
			return
		}

		_, err = s.RefreshTokens.Create(ctx, models.RefreshToken{
			UserId:    user.Id,
			TokenHash: newHash,
			ExpiresAt: time.Now().UTC().Add(utils.RefreshTTL()).Format(time.RFC3339),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store refresh token"})
			return
		}

		accessToken, err := utils.GenerateAccessToken(user.Id, user.Email, string(user.Role), utils.AccessTTL())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate access token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
	}
}

func Logout(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		hash, _ := c.Cookie("refreshToken")
		utils.ClearRefreshCookie(c)

		// best effort revoke
		if hash != "" {
			if rt, ok := findRefreshToken(ctx, s, hash); ok && rt.RevokedAt == nil {
				now := time.Now().UTC().Format(time.RFC3339)
				_, _ = s.RefreshTokens.Update(ctx, rt.Id, func(t *models.RefreshToken) {
					t.RevokedAt = &now
				})
			}
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func revokeAllRefreshTokens(ctx context.Context, s *store.Store, userID string) error {
	tokens, err := s.RefreshTokens.Filter(ctx, store.Query{"user_id": userID}, "", 0)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, t := range tokens {
		if t.UserId != userID || t.RevokedAt != nil {
			continue
		}
		if _, err := s.RefreshTokens.Update(ctx, t.Id, func(rt *models.RefreshToken) {
			rt.RevokedAt = &now
		}); err != nil {
			return err
		}
	}
	return nil
}
