package services_test

import (
	"context"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cordial-dev/cordial/internal/config"
	"github.com/cordial-dev/cordial/internal/models"
	"github.com/cordial-dev/cordial/internal/services"
	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

// Runs only with CORDIAL_POSTGRES_TESTS=1 and a container runtime available.
var _ = Describe("Directory on PostgreSQL", Ordered, Label("integration"), func() {
	var (
		ctx       context.Context
		container testcontainers.Container
		profile   *config.Profile
		cfg       config.Database
	)

	BeforeAll(func() {
		if os.Getenv("CORDIAL_POSTGRES_TESTS") != "1" {
			Skip("set CORDIAL_POSTGRES_TESTS=1 to run PostgreSQL integration tests")
		}
		ctx = context.Background()

		req := testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "cordial",
				"POSTGRES_PASSWORD": "cordial",
				"POSTGRES_DB":       "cordial",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		}

		var err error
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			_ = container.Terminate(context.Background())
		})

		host, err := container.Host(ctx)
		Expect(err).NotTo(HaveOccurred())
		port, err := container.MappedPort(ctx, "5432")
		Expect(err).NotTo(HaveOccurred())

		profile = &config.Profile{
			Username: "cordial",
			Password: config.Secret("cordial"),
			Host:     host,
			Port:     uint16(port.Int()),
			Database: "guests_it",
		}
		cfg = config.NewConfigurationWithDefaults().Database
	})

	It("should bootstrap a fresh database and serve the guest lifecycle", func() {
		cfg.Bootstrap = config.BootstrapDevelopment
		dir, err := services.NewPostgresDirectory(ctx, cfg, profile)
		Expect(err).NotTo(HaveOccurred())
		defer dir.Close()

		g := models.NewGuest("quiet-otter", "s3cret")
		created, err := dir.Guests().Create(ctx, g)
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(Equal(g))

		version, err := dir.Pool().Version(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(ContainSubstring("PostgreSQL"))

		Expect(dir.Guests().Delete(ctx, g)).To(Succeed())
		_, err = dir.Guests().Get(ctx, g.ID)
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})

	It("should wipe the database on the next development bootstrap", func() {
		cfg.Bootstrap = config.BootstrapDevelopment
		dir, err := services.NewPostgresDirectory(ctx, cfg, profile)
		Expect(err).NotTo(HaveOccurred())
		_, err = dir.Guests().Create(ctx, models.NewGuest("gone", "h"))
		Expect(err).NotTo(HaveOccurred())
		Expect(dir.Close()).To(Succeed())

		dir, err = services.NewPostgresDirectory(ctx, cfg, profile)
		Expect(err).NotTo(HaveOccurred())
		defer dir.Close()

		all, err := dir.Guests().GetAll(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(BeEmpty())
	})

	It("should connect to the existing database without dropping it", func() {
		cfg.Bootstrap = config.BootstrapExisting
		dir, err := services.NewPostgresDirectory(ctx, cfg, profile)
		Expect(err).NotTo(HaveOccurred())
		defer dir.Close()

		g, err := dir.Guests().Create(ctx, models.NewGuest("kept", "h"))
		Expect(err).NotTo(HaveOccurred())

		again, err := services.NewPostgresDirectory(ctx, cfg, profile)
		Expect(err).NotTo(HaveOccurred())
		defer again.Close()

		fetched, err := again.Guests().Get(ctx, g.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(fetched).To(Equal(g))
	})
})
