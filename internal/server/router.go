package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noah-isme/soutien-scolaire-api/internal/handler"
)

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Teachers *handler.TeacherHandler
	Students *handler.StudentHandler
	Courses  *handler.CourseHandler
	Rooms    *handler.RoomHandler
	Sessions *handler.SessionHandler
	Payments *handler.PaymentHandler
	Receipts *handler.ReceiptHandler
	Payslips *handler.PayslipHandler
	Metrics  *handler.MetricsHandler
}

// Options toggles the optional surfaces.
type Options struct {
	APIPrefix     string
	EnableMetrics bool
	EnableDocs    bool
}

// NewRouter builds the gin engine with the given middlewares applied in order.
func NewRouter(h Handlers, opts Options, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middlewares...)

	r.GET("/", h.Metrics.Root)
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	if opts.EnableMetrics {
		r.GET("/metrics", h.Metrics.Prometheus)
	}
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	prefix := opts.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}
	api := r.Group(prefix)

	professeurs := api.Group("/professeurs")
	professeurs.GET("", h.Teachers.List)
	professeurs.GET("/:id", h.Teachers.Get)
	professeurs.POST("", h.Teachers.Create)
	professeurs.PUT("/:id", h.Teachers.Update)
	professeurs.DELETE("/:id", h.Teachers.Delete)

	eleves := api.Group("/eleves")
	eleves.GET("", h.Students.List)
	eleves.GET("/:id", h.Students.Get)
	eleves.GET("/:id/programmations", h.Students.Sessions)
	eleves.POST("", h.Students.Create)
	eleves.PUT("/:id", h.Students.Update)
	eleves.DELETE("/:id", h.Students.Delete)

	cours := api.Group("/cours")
	cours.GET("", h.Courses.List)
	cours.GET("/eleve/:eleveId", h.Courses.ListByStudent)
	cours.GET("/:id", h.Courses.Get)
	cours.POST("", h.Courses.Create)
	cours.PUT("/:id", h.Courses.Update)
	cours.DELETE("/:id", h.Courses.Delete)

	salles := api.Group("/salles")
	salles.GET("", h.Rooms.List)
	salles.GET("/:id", h.Rooms.Get)
	salles.POST("", h.Rooms.Create)
	salles.PUT("/:id", h.Rooms.Update)
	salles.DELETE("/:id", h.Rooms.Delete)

	programmations := api.Group("/programmations")
	programmations.GET("", h.Sessions.List)
	programmations.GET("/professeur/:professeurId", h.Sessions.ListByTeacher)
	programmations.GET("/:id", h.Sessions.Get)
	programmations.POST("", h.Sessions.Create)
	programmations.PUT("/:id", h.Sessions.Update)
	programmations.DELETE("/:id", h.Sessions.Delete)
	programmations.POST("/:id/eleves/:eleveId", h.Sessions.Enroll)
	programmations.DELETE("/:id/eleves/:eleveId", h.Sessions.Unenroll)

	paiements := api.Group("/paiements")
	paiements.GET("", h.Payments.List)
	paiements.GET("/export", h.Payments.Export)
	paiements.GET("/:id", h.Payments.Get)
	paiements.POST("", h.Payments.Create)

	fichePaies := api.Group("/fichePaies")
	fichePaies.GET("", h.Payslips.List)
	fichePaies.GET("/professeur/:professeurId", h.Payslips.ListByTeacher)
	fichePaies.GET("/:id", h.Payslips.Get)
	fichePaies.GET("/:id/pdf", h.Payslips.PDF)
	fichePaies.POST("", h.Payslips.Create)
	fichePaies.POST("/generer/:professeurId", h.Payslips.Generate)
	fichePaies.DELETE("/:id", h.Payslips.Delete)

	recuPaiements := api.Group("/recuPaiements")
	recuPaiements.GET("", h.Receipts.List)
	recuPaiements.GET("/eleve/:eleveId", h.Receipts.ListByStudent)
	recuPaiements.GET("/:id", h.Receipts.Get)
	recuPaiements.GET("/:id/pdf", h.Receipts.PDF)
	recuPaiements.POST("", h.Receipts.Create)
	recuPaiements.DELETE("/:id", h.Receipts.Delete)

	return r
}
