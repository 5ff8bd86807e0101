package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/cordial-dev/cordial/api/v1"
	"github.com/cordial-dev/cordial/internal/handlers"
	"github.com/cordial-dev/cordial/internal/models"
	"github.com/cordial-dev/cordial/internal/store"
	"github.com/cordial-dev/cordial/internal/store/migrations"
)

type failingVersions struct{}

func (failingVersions) Version(context.Context) (string, error) {
	return "", errors.New("server unreachable")
}

func newRouter(h *handlers.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: h.RespondError})
	return router
}

func do(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeGuest(rec *httptest.ResponseRecorder) models.Guest {
	var g v1.Guest
	Expect(json.Unmarshal(rec.Body.Bytes(), &g)).To(Succeed())
	return g.ToModel()
}

var _ = Describe("Handler", func() {
	var (
		ctx    context.Context
		pool   *store.Pool
		router *gin.Engine
	)

	BeforeEach(func() {
		ctx = context.Background()

		db, err := store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())

		pool = store.NewPool(db)
		router = newRouter(handlers.New(store.NewGuestStore(pool), pool, "*"))
	})

	AfterEach(func() {
		pool.Close()
	})

	Context("diagnostics", func() {
		It("should answer health checks with an empty 200", func() {
			rec := do(router, http.MethodGet, "/health", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.Len()).To(BeZero())
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})

		It("should report the server version as text", func() {
			rec := do(router, http.MethodGet, "/book", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(HavePrefix("text/plain"))
			Expect(rec.Body.String()).NotTo(BeEmpty())
		})

		// Given a database that cannot be reached
		// When /book is requested
		// Then the error text is returned with status 200
		It("should fold a failed version query into a 200 body", func() {
			r := newRouter(handlers.New(store.NewGuestStore(pool), failingVersions{}, "*"))

			rec := do(r, http.MethodGet, "/book", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("server unreachable"))
		})
	})

	Context("guest lifecycle", func() {
		// Given an empty directory
		// When a guest is created, read, updated, listed and deleted over HTTP
		// Then every step answers 200 and the final read answers 400
		It("should serve the full lifecycle", func() {
			g := models.NewGuest("quiet-otter-0042", "s3cret")

			rec := do(router, http.MethodPost, "/guests", v1.NewGuestFromModel(g))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeGuest(rec)).To(Equal(g))

			rec = do(router, http.MethodGet, "/guests/"+g.ID.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeGuest(rec)).To(Equal(g))

			changed := models.Guest{ID: g.ID, Name: "loud-otter", Hash: "n3w"}
			rec = do(router, http.MethodPut, "/guests/"+g.ID.String(), v1.NewGuestFromModel(changed))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeGuest(rec)).To(Equal(changed))

			rec = do(router, http.MethodGet, "/guests", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var list []v1.Guest
			Expect(json.Unmarshal(rec.Body.Bytes(), &list)).To(Succeed())
			Expect(list).To(ConsistOf(v1.NewGuestFromModel(changed)))

			rec = do(router, http.MethodDelete, "/guests/"+g.ID.String(), v1.NewGuestFromModel(changed))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.Len()).To(BeZero())

			rec = do(router, http.MethodGet, "/guests/"+g.ID.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Header().Get("Content-Type")).To(HavePrefix("text/plain"))
			Expect(rec.Body.String()).To(ContainSubstring("not found"))
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})

		It("should list an empty directory as an empty array", func() {
			rec := do(router, http.MethodGet, "/guests", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(Equal("[]"))
		})

		It("should reject an unparsable id", func() {
			rec := do(router, http.MethodGet, "/guests/not-a-uuid", nil)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("invalid format for parameter id"))
		})

		It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/guests", bytes.NewBufferString(`{"id": 7`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		// Given a guest body without an id
		// When it is posted
		// Then it is rejected and nothing is stored under the nil id
		It("should reject a guest without an id", func() {
			rec := do(router, http.MethodPost, "/guests", map[string]string{"name": "Ada", "hash": "h1"})

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("guest id is missing"))

			rec = do(router, http.MethodGet, "/guests/"+uuid.Nil.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("not found"))
		})

		It("should reject a body whose id differs from the path", func() {
			g := models.NewGuest("a", "b")

			rec := do(router, http.MethodPut, "/guests/"+uuid.NewString(), v1.NewGuestFromModel(g))

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("does not match"))
		})

		It("should reject a duplicate create", func() {
			g := v1.NewGuestFromModel(models.NewGuest("a", "b"))
			Expect(do(router, http.MethodPost, "/guests", g).Code).To(Equal(http.StatusOK))

			rec := do(router, http.MethodPost, "/guests", g)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).NotTo(BeEmpty())
		})

		It("should succeed when updating or deleting an unknown guest", func() {
			g := v1.NewGuestFromModel(models.NewGuest("ghost", "h"))
			path := "/guests/" + g.Id.String()

			Expect(do(router, http.MethodPut, path, g).Code).To(Equal(http.StatusOK))
			Expect(do(router, http.MethodDelete, path, g).Code).To(Equal(http.StatusOK))
		})
	})

	Context("improv", func() {
		It("should return a plain name", func() {
			rec := do(router, http.MethodGet, "/improv/name", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchRegexp(`^[a-z]+-[a-z]+$`))
		})

		It("should return a numbered name", func() {
			rec := do(router, http.MethodGet, "/improv/name/num", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchRegexp(`^[a-z]+-[a-z]+-[0-9]{4}$`))
		})

		It("should return a default password", func() {
			rec := do(router, http.MethodGet, "/improv/pass", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchRegexp(`^[a-z0-9]{8}$`))
		})

		It("should honor a posted policy", func() {
			policy := v1.PasswordPolicy{Length: 20, Uppercase: true, Symbols: true, Spaces: true, Exclude: true, Strict: true}

			rec := do(router, http.MethodPost, "/improv/pass", policy)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(HaveLen(20))
			Expect(rec.Body.String()).NotTo(MatchRegexp(`[0-9]`))
		})

		It("should fill missing policy fields from the default", func() {
			rec := do(router, http.MethodPost, "/improv/pass", map[string]any{"length": 12})

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchRegexp(`^[a-z0-9]{12}$`))
		})

		It("should reject a policy without character classes", func() {
			rec := do(router, http.MethodPost, "/improv/pass", v1.PasswordPolicy{Length: 8})

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("character class"))
		})

		It("should reject an oversized password length", func() {
			rec := do(router, http.MethodPost, "/improv/pass", map[string]any{"length": 2000000000})

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("at most"))
		})

		It("should return an improvised guest without storing it", func() {
			rec := do(router, http.MethodGet, "/improv/guest", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			g := decodeGuest(rec)
			Expect(g.ID).NotTo(Equal(uuid.Nil))

			count, err := store.NewGuestStore(pool).Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})
})
