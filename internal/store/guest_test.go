package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cordial-dev/cordial/internal/models"
	"github.com/cordial-dev/cordial/internal/store"
	"github.com/cordial-dev/cordial/internal/store/migrations"
	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

var _ = Describe("GuestStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(store.NewPool(db))
	})

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
	})

	Context("Create", func() {
		// Given a fresh guest
		// When we create it and read it back
		// Then both the created and the fetched guest equal the input
		It("should round-trip a guest", func() {
			// Arrange
			g := models.NewGuest("brave-heron", "s3cret")

			// Act
			created, err := s.Guests().Create(ctx, g)
			Expect(err).NotTo(HaveOccurred())
			fetched, err := s.Guests().Get(ctx, g.ID)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(Equal(g))
			Expect(fetched).To(Equal(g))
		})

		// Given a stored guest
		// When another guest with the same id is created
		// Then it should fail with a store error
		It("should reject a duplicate id", func() {
			g := models.NewGuest("brave-heron", "s3cret")
			_, err := s.Guests().Create(ctx, g)
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Guests().Create(ctx, models.Guest{ID: g.ID, Name: "other", Hash: "x"})

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsStoreError(err)).To(BeTrue())
		})
	})

	Context("Get", func() {
		It("should return not found for an unknown id", func() {
			_, err := s.Guests().Get(ctx, uuid.New())

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("GetAll", func() {
		It("should return an empty list when no guests exist", func() {
			guests, err := s.Guests().GetAll(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(guests).To(BeEmpty())
		})

		// Given N guests created one after another
		// When we list all guests
		// Then we get N guests in creation order
		It("should return guests in insertion order", func() {
			var created []models.Guest
			for i := range 10 {
				g, err := s.Guests().Create(ctx, models.NewGuest(fmt.Sprintf("guest-%d", i), "h"))
				Expect(err).NotTo(HaveOccurred())
				created = append(created, g)
			}

			guests, err := s.Guests().GetAll(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(guests).To(Equal(created))
		})
	})

	Context("Update", func() {
		It("should overwrite name and hash", func() {
			g, err := s.Guests().Create(ctx, models.NewGuest("before", "h1"))
			Expect(err).NotTo(HaveOccurred())

			changed := models.Guest{ID: g.ID, Name: "after", Hash: "h2"}
			updated, err := s.Guests().Update(ctx, changed)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated).To(Equal(changed))

			fetched, err := s.Guests().Get(ctx, g.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(Equal(changed))
		})

		// Given a guest that was never stored
		// When we update it
		// Then the call succeeds, returns the input and stores nothing
		It("should succeed without effect for an unknown id", func() {
			ghost := models.NewGuest("ghost", "h")

			updated, err := s.Guests().Update(ctx, ghost)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated).To(Equal(ghost))

			count, err := s.Guests().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(0))
		})
	})

	Context("Delete", func() {
		// Given a stored guest
		// When we delete it
		// Then getting it fails with not found
		It("should remove the guest", func() {
			g, err := s.Guests().Create(ctx, models.NewGuest("leaving", "h"))
			Expect(err).NotTo(HaveOccurred())

			err = s.Guests().Delete(ctx, g)
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Guests().Get(ctx, g.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should be idempotent", func() {
			g, err := s.Guests().Create(ctx, models.NewGuest("leaving", "h"))
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Guests().Delete(ctx, g)).To(Succeed())
			Expect(s.Guests().Delete(ctx, g)).To(Succeed())
		})
	})

	Context("Concurrent writes", func() {
		// Given more goroutines than pooled connections
		// When all of them create guests at the same time
		// Then every create succeeds and every guest is stored
		It("should handle concurrent creates from multiple goroutines", func() {
			const numGoroutines = 20
			var wg sync.WaitGroup
			errors := make(chan error, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					_, err := s.Guests().Create(ctx, models.NewGuest(fmt.Sprintf("guest-%d", idx), "h"))
					if err != nil {
						errors <- err
					}
				}(i)
			}

			wg.Wait()
			close(errors)

			for err := range errors {
				Expect(err).NotTo(HaveOccurred())
			}

			count, err := s.Guests().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(numGoroutines))
		})
	})
})
