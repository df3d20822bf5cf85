package apperr_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/utils/apperr"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Auth failure", goerr.New("bad signature", goerr.T(model.ErrTagAuthFailure)), http.StatusUnauthorized},
		{"Bad request", goerr.New("unknown command", goerr.T(model.ErrTagBadRequest)), http.StatusBadRequest},
		{"Unknown interaction", goerr.Wrap(model.ErrUnknownInteraction, "decode"), http.StatusBadRequest},
		{"Configuration missing", goerr.New("no key", goerr.T(model.ErrTagConfigurationMissing)), http.StatusServiceUnavailable},
		{"Upstream", goerr.New("rootly", goerr.T(model.ErrTagUpstream)), http.StatusBadGateway},
		{"Wrapped tag", goerr.Wrap(goerr.New("x", goerr.T(model.ErrTagAuthFailure)), "outer"), http.StatusUnauthorized},
		{"Plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, tc.expected, apperr.StatusCode(tc.err))
		})
	}
}

func TestHandleHTTP(t *testing.T) {
	w := httptest.NewRecorder()
	apperr.HandleHTTP(context.Background(), w, goerr.New("secret detail", goerr.T(model.ErrTagAuthFailure)))

	gt.Equal(t, http.StatusUnauthorized, w.Code)
	gt.Equal(t, "application/json", w.Header().Get("Content-Type"))
	gt.S(t, w.Body.String()).Contains("Unauthorized")
	gt.S(t, w.Body.String()).NotContains("secret detail")
}
