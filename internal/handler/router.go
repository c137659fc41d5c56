package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/workforce-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux              *http.ServeMux
	logger           *slog.Logger
	employeeHandler  *EmployeeHandler
	timeEntryHandler *TimeEntryHandler
	scheduleHandler  *ScheduleHandler
	attHandler       *AttendanceHandler
	analyticsHandler *AnalyticsHandler
	exportsDir       string
}

// NewRouter создаёт новый роутер. exportsDir - каталог с выгруженными
// файлами; пустая строка отключает раздачу /exports/.
func NewRouter(
	employeeHandler *EmployeeHandler,
	timeEntryHandler *TimeEntryHandler,
	scheduleHandler *ScheduleHandler,
	attHandler *AttendanceHandler,
	analyticsHandler *AnalyticsHandler,
	exportsDir string,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		logger:           logger,
		employeeHandler:  employeeHandler,
		timeEntryHandler: timeEntryHandler,
		scheduleHandler:  scheduleHandler,
		attHandler:       attHandler,
		analyticsHandler: analyticsHandler,
		exportsDir:       exportsDir,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/api/employees", r.employeesRouter)
	r.mux.HandleFunc("/api/employees/", r.employeesRouter)
	r.mux.HandleFunc("/api/time-entries", r.timeEntriesRouter)
	r.mux.HandleFunc("/api/time-entries/", r.timeEntriesRouter)
	r.mux.HandleFunc("/api/schedules", r.schedulesRouter)
	r.mux.HandleFunc("/api/schedules/", r.schedulesRouter)
	r.mux.HandleFunc("/api/attendance", r.attendanceRouter)
	r.mux.HandleFunc("/api/analytics/dashboard", r.dashboardRouter)

	if r.exportsDir != "" {
		r.mux.Handle("/exports/", http.StripPrefix("/exports/", http.FileServer(http.Dir(r.exportsDir))))
	}

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.CORS(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// employeesRouter обрабатывает все запросы к /api/employees
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/employees")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.employeeHandler.List(w, req)
		case http.MethodPost:
			r.employeeHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	if path == "export-google-sheets" {
		if req.Method == http.MethodPost {
			r.employeeHandler.Export(w, req)
			return
		}
		methodNotAllowed(w)
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) == 1 {
		// /api/employees/{id}
		switch req.Method {
		case http.MethodGet:
			r.employeeHandler.GetByID(w, req, parts[0])
		case http.MethodPut:
			r.employeeHandler.Update(w, req, parts[0])
		case http.MethodDelete:
			r.employeeHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}
		return
	}

	notFound(w)
}

// timeEntriesRouter обрабатывает все запросы к /api/time-entries
func (r *Router) timeEntriesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/time-entries")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.timeEntryHandler.List(w, req)
		case http.MethodPost:
			r.timeEntryHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	parts := strings.Split(path, "/")

	// /api/time-entries/active/{employeeId}
	if len(parts) == 2 && parts[0] == "active" {
		if req.Method == http.MethodGet {
			r.timeEntryHandler.GetActive(w, req, parts[1])
			return
		}
		methodNotAllowed(w)
		return
	}

	// /api/time-entries/{id}/clock-out
	if len(parts) == 2 && parts[1] == "clock-out" {
		if req.Method == http.MethodPut {
			r.timeEntryHandler.ClockOut(w, req, parts[0])
			return
		}
		methodNotAllowed(w)
		return
	}

	notFound(w)
}

// schedulesRouter обрабатывает все запросы к /api/schedules
func (r *Router) schedulesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/schedules")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.scheduleHandler.List(w, req)
		case http.MethodPost:
			r.scheduleHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	if path == "export-google-sheets" {
		if req.Method == http.MethodPost {
			r.scheduleHandler.Export(w, req)
			return
		}
		methodNotAllowed(w)
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) == 1 {
		// /api/schedules/{id}
		switch req.Method {
		case http.MethodPut:
			r.scheduleHandler.Update(w, req, parts[0])
		case http.MethodDelete:
			r.scheduleHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}
		return
	}

	notFound(w)
}

// attendanceRouter обрабатывает все запросы к /api/attendance
func (r *Router) attendanceRouter(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		r.attHandler.List(w, req)
	case http.MethodPost:
		r.attHandler.Create(w, req)
	default:
		methodNotAllowed(w)
	}
}

func (r *Router) dashboardRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	r.analyticsHandler.Dashboard(w, req)
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"message":"method not allowed"}`, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
}
