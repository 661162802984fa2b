package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	PageHandler        *PageHandler
	NewsHandler        *NewsHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	HealthHandler      *HealthHandler
}
