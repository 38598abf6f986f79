package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishbox-backend/internal/domains/reservation"
)

// stubService returns canned responses so the handler's status mapping
// can be exercised without a database.
type stubService struct {
	out        *reservation.ReservationOut
	reserveErr error
	cancelErr  error
}

func (s *stubService) Reserve(_ context.Context, _ string, itemID uuid.UUID, _ *uuid.UUID, req reservation.ReserveRequest) (*reservation.ReservationOut, error) {
	if s.reserveErr != nil {
		return nil, s.reserveErr
	}
	out := *s.out
	out.ItemID = itemID
	out.ReserverName = req.ReserverName
	return &out, nil
}

func (s *stubService) Cancel(context.Context, string, uuid.UUID, *uuid.UUID, reservation.CancelRequest) error {
	return s.cancelErr
}

func newRouter(svc reservation.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReservationHandler(svc)
	r := gin.New()
	r.POST("/wishlists/:slug/items/:itemId/reserve", h.Reserve)
	r.DELETE("/wishlists/:slug/items/:itemId/reserve", h.Cancel)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReserveReturnsCreatedWithSecret(t *testing.T) {
	itemID := uuid.New()
	svc := &stubService{out: &reservation.ReservationOut{
		ID:           uuid.New(),
		CancelSecret: "a3f09b7c51d2e48fa3f09b7c51d2e48f",
		CreatedAt:    time.Now().UTC(),
	}}
	r := newRouter(svc)

	w := doJSON(r, http.MethodPost, "/wishlists/birthday/items/"+itemID.String()+"/reserve",
		`{"reserver_name": "Bob"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var out reservation.ReservationOut
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, itemID, out.ItemID)
	assert.Equal(t, "Bob", out.ReserverName)
	assert.Equal(t, svc.out.CancelSecret, out.CancelSecret)
}

func TestReserveValidation(t *testing.T) {
	r := newRouter(&stubService{})

	t.Run("missing name", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/wishlists/birthday/items/"+uuid.NewString()+"/reserve",
			`{"reserver_name": ""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad item id", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/wishlists/birthday/items/not-a-uuid/reserve",
			`{"reserver_name": "Bob"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/wishlists/birthday/items/"+uuid.NewString()+"/reserve",
			`{"reserver_name`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReserveErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"already reserved", reservation.ErrAlreadyReserved, http.StatusConflict},
		{"own item", reservation.ErrOwnItem, http.StatusBadRequest},
		{"group gift", reservation.ErrGroupGiftItem, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&stubService{reserveErr: tc.err})
			w := doJSON(r, http.MethodPost, "/wishlists/birthday/items/"+uuid.NewString()+"/reserve",
				`{"reserver_name": "Bob"}`)
			assert.Equal(t, tc.code, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["detail"])
		})
	}
}

func TestCancelStatusCodes(t *testing.T) {
	path := "/wishlists/birthday/items/" + uuid.NewString() + "/reserve"

	t.Run("released", func(t *testing.T) {
		w := doJSON(newRouter(&stubService{}), http.MethodDelete, path,
			`{"cancel_secret": "a3f09b7c51d2e48f"}`)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := doJSON(newRouter(&stubService{cancelErr: reservation.ErrWrongCancelSecret}),
			http.MethodDelete, path, `{"cancel_secret": "wrong"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("nothing active", func(t *testing.T) {
		w := doJSON(newRouter(&stubService{cancelErr: reservation.ErrNoActiveReservation}),
			http.MethodDelete, path, `{"cancel_secret": "a3f09b7c51d2e48f"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("secret required", func(t *testing.T) {
		w := doJSON(newRouter(&stubService{}), http.MethodDelete, path, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
