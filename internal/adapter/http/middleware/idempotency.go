package middleware

import (
	"net/http"
	"strings"

	"crm_pipeline/internal/usecase/interfaces"
	"crm_pipeline/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const HeaderIdempotencyKey = "Idempotency-Key"

var errDuplicateCommand = pkg.NewDomainErrorSimple("DUPLICATE_COMMAND", "Command with this Idempotency-Key was already processed", http.StatusConflict)

// Idempotency rejects a replayed board command carrying an already seen
// Idempotency-Key. Requests without the header, and safe methods, pass through.
// A command that ends with an error status, or panics, releases its key so it
// can be retried. The panic is re-raised for Recovery to answer.
func Idempotency(store interfaces.IIdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
		if store == nil || key == "" || !isCommand(c.Request.Method) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		added, err := store.Add(ctx, key)
		if err != nil {
			log.WithContext(ctx).WithError(err).WithField("key", key).Warn("[pipeline][idempotency] store unavailable; processing without dedup")
			c.Next()
			return
		}
		if !added {
			log.WithContext(ctx).WithField("key", key).Info("[pipeline][idempotency] duplicate command rejected")
			c.AbortWithStatusJSON(errDuplicateCommand.HTTPStatus, errDuplicateCommand.ToHTTPError())
			return
		}

		defer func() {
			if r := recover(); r != nil {
				release(c, store, key)
				panic(r)
			}
			if c.Writer.Status() >= http.StatusBadRequest {
				release(c, store, key)
			}
		}()
		c.Next()
	}
}

func release(c *gin.Context, store interfaces.IIdempotencyStore, key string) {
	ctx := c.Request.Context()
	if err := store.Remove(ctx, key); err != nil {
		log.WithContext(ctx).WithError(err).WithField("key", key).Warn("[pipeline][idempotency] failed to release key")
	}
}

func isCommand(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}
