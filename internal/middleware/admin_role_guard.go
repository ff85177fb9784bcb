package middleware

import (
	"net/http"

	"artspace/internal/authz"

	"github.com/labstack/echo/v4"
)

//contextに入っているprincipalがADMINロールを持つか確認します。

func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Get(CtxPrincipalKey)
			p, ok := raw.(authz.Principal)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//USERは拒否、ADMINだけ許可
			if !p.IsAdmin() {
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}

			return next(c)
		}
	}
}
