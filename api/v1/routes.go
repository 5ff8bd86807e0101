package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(c *gin.Context)
	// (GET /book)
	GetBook(c *gin.Context)
	// (GET /guests)
	ListGuests(c *gin.Context)
	// (POST /guests)
	CreateGuest(c *gin.Context)
	// (GET /guests/{id})
	GetGuest(c *gin.Context, id uuid.UUID)
	// (PUT /guests/{id})
	UpdateGuest(c *gin.Context, id uuid.UUID)
	// (DELETE /guests/{id})
	DeleteGuest(c *gin.Context, id uuid.UUID)
	// (GET /improv/name)
	GetName(c *gin.Context)
	// (GET /improv/name/num)
	GetNumberedName(c *gin.Context)
	// (GET /improv/pass)
	GetPass(c *gin.Context)
	// (POST /improv/pass)
	CreatePass(c *gin.Context)
	// (GET /improv/guest)
	GetImprovGuest(c *gin.Context)
}

// ServerInterfaceWrapper converts path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler      ServerInterface
	ErrorHandler func(*gin.Context, error)
}

func (w *ServerInterfaceWrapper) withID(next func(*gin.Context, uuid.UUID)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id uuid.UUID

		err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
		if err != nil {
			w.ErrorHandler(c, srvErrors.NewSerializationError("invalid format for parameter id", err))
			return
		}
		next(c, id)
	}
}

type GinServerOptions struct {
	ErrorHandler func(*gin.Context, error)
}

// RegisterHandlers creates http.Handler with routing matching the guest directory API.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error) {
			c.String(400, err.Error())
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:      si,
		ErrorHandler: errorHandler,
	}

	router.GET("/health", si.GetHealth)
	router.GET("/book", si.GetBook)
	router.GET("/guests", si.ListGuests)
	router.POST("/guests", si.CreateGuest)
	router.GET("/guests/:id", wrapper.withID(si.GetGuest))
	router.PUT("/guests/:id", wrapper.withID(si.UpdateGuest))
	router.DELETE("/guests/:id", wrapper.withID(si.DeleteGuest))
	router.GET("/improv/name", si.GetName)
	router.GET("/improv/name/num", si.GetNumberedName)
	router.GET("/improv/pass", si.GetPass)
	router.POST("/improv/pass", si.CreatePass)
	router.GET("/improv/guest", si.GetImprovGuest)
}
