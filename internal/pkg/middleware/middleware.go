package middleware

import (
	"fmt"
	"strings"

	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

const LocalCustomerEmail = "customer_email"

type Middleware struct {
	Log       *otelzap.Logger
	JwtSecret string
}

// ResolveIdentity reads an optional Bearer token. Requests without one, or
// with another authorization scheme, pass through anonymously; a Bearer token
// that does not verify is rejected. The token's sub claim (the customer's
// email) is stored in LocalCustomerEmail.
func (m *Middleware) ResolveIdentity(ctx *fiber.Ctx) error {
	raw, ok := strings.CutPrefix(ctx.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok {
		return ctx.Next()
	}

	if m.JwtSecret == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token: no signing secret configured")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.JwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	email, err := token.Claims.GetSubject()
	if err != nil || email == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token: missing subject")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals(LocalCustomerEmail, strings.ToLower(email))
	return ctx.Next()
}

// Tracing opens an APM transaction per request and carries it in the user
// context so usecase spans attach to it.
func (m *Middleware) Tracing(ctx *fiber.Ctx) error {
	tx := apm.DefaultTracer.StartTransaction(ctx.Method()+" "+ctx.Path(), "request")
	defer tx.End()

	ctx.SetUserContext(apm.ContextWithTransaction(ctx.UserContext(), tx))

	err := ctx.Next()

	// named after the matched route once routing has run
	tx.Name = ctx.Method() + " " + ctx.Route().Path
	tx.Result = fmt.Sprintf("HTTP %dxx", ctx.Response().StatusCode()/100)
	if err != nil {
		if e := apm.CaptureError(ctx.UserContext(), err); e != nil {
			e.Send()
		}
	}
	return err
}
