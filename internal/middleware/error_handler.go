package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		// Message may be a string or a wrapped error; render either
		// without echo's "code=... message=..." debug text.
		msg = fmt.Sprintf("%v", he.Message)
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
