package http

import (
	"net/http"

	"go-vaccination-clinic/internal/delivery/http/handler"
	"go-vaccination-clinic/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	vaccineHandler      *handler.VaccineHandler
	centerHandler       *handler.CenterHandler
	inventoryHandler    *handler.InventoryHandler
	appointmentHandler  *handler.AppointmentHandler
	recordHandler       *handler.VaccinationRecordHandler
	feedbackHandler     *handler.FeedbackHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	vaccineHandler *handler.VaccineHandler,
	centerHandler *handler.CenterHandler,
	inventoryHandler *handler.InventoryHandler,
	appointmentHandler *handler.AppointmentHandler,
	recordHandler *handler.VaccinationRecordHandler,
	feedbackHandler *handler.FeedbackHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		vaccineHandler:      vaccineHandler,
		centerHandler:       centerHandler,
		inventoryHandler:    inventoryHandler,
		appointmentHandler:  appointmentHandler,
		recordHandler:       recordHandler,
		feedbackHandler:     feedbackHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient self-service (protected - patient only)
	patientSelf := api.PathPrefix("/patients/me").Subrouter()
	patientSelf.Use(r.authMiddleware.Authenticate)
	patientSelf.Use(middleware.RequirePatient)
	patientSelf.HandleFunc("", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patientSelf.HandleFunc("", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)
	patientSelf.HandleFunc("/id-proof", r.patientHandler.UploadIDProof).Methods(http.MethodPost)

	// Patient roster (admin and staff)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireAdminOrStaff)
	patients.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)

	// Catalog reads (any authenticated user)
	vaccines := api.PathPrefix("/vaccines").Subrouter()
	vaccines.Use(r.authMiddleware.Authenticate)
	vaccines.HandleFunc("", r.vaccineHandler.GetAllVaccines).Methods(http.MethodGet)
	vaccines.HandleFunc("/{id}", r.vaccineHandler.GetVaccine).Methods(http.MethodGet)

	centers := api.PathPrefix("/centers").Subrouter()
	centers.Use(r.authMiddleware.Authenticate)
	centers.HandleFunc("", r.centerHandler.GetAllCenters).Methods(http.MethodGet)
	centers.HandleFunc("/{id}", r.centerHandler.GetCenter).Methods(http.MethodGet)

	// Staff queue, registered before the patient appointment routes so the
	// /appointments prefix below does not swallow it.
	staffAppointments := api.PathPrefix("/appointments/assigned").Subrouter()
	staffAppointments.Use(r.authMiddleware.Authenticate)
	staffAppointments.Use(middleware.RequireStaff)
	staffAppointments.HandleFunc("", r.appointmentHandler.GetAssignedAppointments).Methods(http.MethodGet)

	// Appointments (protected - patient books and lists own)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Use(middleware.RequirePatient)
	appointments.HandleFunc("", r.appointmentHandler.Book).Methods(http.MethodPost)
	appointments.HandleFunc("/me", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)

	// Vaccination records (protected - own data + certificate download)
	records := api.PathPrefix("/vaccination-records").Subrouter()
	records.Use(r.authMiddleware.Authenticate)
	records.HandleFunc("/me", r.recordHandler.GetMyRecords).Methods(http.MethodGet)
	records.HandleFunc("/{id}/certificate", r.recordHandler.DownloadCertificate).Methods(http.MethodGet)

	// Feedback (protected - any authenticated user submits and lists own)
	feedback := api.PathPrefix("/feedback").Subrouter()
	feedback.Use(r.authMiddleware.Authenticate)
	feedback.HandleFunc("", r.feedbackHandler.CreateFeedback).Methods(http.MethodPost)
	feedback.HandleFunc("/me", r.feedbackHandler.GetMyFeedback).Methods(http.MethodGet)

	// Notifications (protected - own inbox)
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.GetMyNotifications).Methods(http.MethodGet)
	notifications.HandleFunc("/unread-count", r.notificationHandler.UnreadCount).Methods(http.MethodGet)
	notifications.HandleFunc("/read/{id}", r.notificationHandler.MarkRead).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Vaccine catalog management (admin)
	admin.HandleFunc("/vaccines", r.vaccineHandler.CreateVaccine).Methods(http.MethodPost)
	admin.HandleFunc("/vaccines/{id}", r.vaccineHandler.UpdateVaccine).Methods(http.MethodPut)
	admin.HandleFunc("/vaccines/{id}", r.vaccineHandler.DeleteVaccine).Methods(http.MethodDelete)

	// Center management (admin)
	admin.HandleFunc("/centers", r.centerHandler.CreateCenter).Methods(http.MethodPost)
	admin.HandleFunc("/centers/{id}", r.centerHandler.UpdateCenter).Methods(http.MethodPut)
	admin.HandleFunc("/centers/{id}", r.centerHandler.DeleteCenter).Methods(http.MethodDelete)

	// Inventory management (admin)
	admin.HandleFunc("/inventory", r.inventoryHandler.CreateBatch).Methods(http.MethodPost)
	admin.HandleFunc("/inventory", r.inventoryHandler.GetAllBatches).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/{id}", r.inventoryHandler.GetBatch).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/{id}", r.inventoryHandler.UpdateBatch).Methods(http.MethodPut)
	admin.HandleFunc("/inventory/{id}", r.inventoryHandler.DeleteBatch).Methods(http.MethodDelete)
	admin.HandleFunc("/inventory/{id}/adjust", r.inventoryHandler.AdjustBatch).Methods(http.MethodPost)

	// Appointment management (admin)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/status", r.appointmentHandler.SetStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/assign", r.appointmentHandler.Assign).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)

	// Vaccination record management (admin)
	admin.HandleFunc("/vaccination-records", r.recordHandler.GetAllRecords).Methods(http.MethodGet)
	admin.HandleFunc("/vaccination-records/{id}", r.recordHandler.UpdateRecord).Methods(http.MethodPut)
	admin.HandleFunc("/vaccination-records/{id}", r.recordHandler.DeleteRecord).Methods(http.MethodDelete)

	// Feedback management (admin)
	admin.HandleFunc("/feedback", r.feedbackHandler.GetAllFeedback).Methods(http.MethodGet)
	admin.HandleFunc("/feedback/{id}/reply", r.feedbackHandler.Reply).Methods(http.MethodPost)
	admin.HandleFunc("/feedback/{id}/close", r.feedbackHandler.Close).Methods(http.MethodPost)
	admin.HandleFunc("/feedback/{id}", r.feedbackHandler.DeleteFeedback).Methods(http.MethodDelete)

	// Notification broadcast (admin)
	admin.HandleFunc("/notifications/broadcast", r.notificationHandler.Broadcast).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
