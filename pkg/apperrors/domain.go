package apperrors

import (
	"net/http"
)

/*
Этот файл содержит предопределенные переменные
для ошибок бизнес-логики сайта и модуля вакансий.
*/

// --- Auth & Users ---

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен (access, refresh).
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- CMS (страницы, секции, новости) ---

// ErrPageNotFound - страница не найдена.
var ErrPageNotFound = New(
	CodeNotFound,
	"cms",
	"Page not found",
	http.StatusNotFound,
)

// ErrSlugAlreadyExists - slug страницы или новости уже занят.
var ErrSlugAlreadyExists = New(
	CodeAlreadyExists,
	"cms",
	"Slug already in use",
	http.StatusConflict,
)

// ErrSectionNotFound - секция не найдена.
var ErrSectionNotFound = New(
	CodeNotFound,
	"cms",
	"Section not found",
	http.StatusNotFound,
)

// ErrNewsNotFound - новость не найдена.
var ErrNewsNotFound = New(
	CodeNotFound,
	"cms",
	"News article not found",
	http.StatusNotFound,
)

// --- Careers (вакансии и отклики) ---

// ErrJobNotFound - вакансия не найдена.
var ErrJobNotFound = New(
	CodeNotFound,
	"careers",
	"Job listing not found",
	http.StatusNotFound,
)

// ErrJobNotOpen - вакансия не принимает отклики в текущем статусе.
var ErrJobNotOpen = New(
	CodeConflict,
	"careers",
	"Job listing is not accepting applications",
	http.StatusConflict,
)

// ErrApplicationNotFound - отклик не найден.
var ErrApplicationNotFound = New(
	CodeNotFound,
	"careers",
	"Application not found",
	http.StatusNotFound,
)

// ErrDuplicateApplication - у пары (кандидат, вакансия) уже есть активный отклик.
var ErrDuplicateApplication = New(
	CodeConflict,
	"careers",
	"An application for this job already exists",
	http.StatusConflict,
)

// ErrApplicationNotActive - отклик уже в терминальном статусе,
// отзывать больше нечего.
var ErrApplicationNotActive = New(
	CodeConflict,
	"careers",
	"Application is already in a terminal state",
	http.StatusConflict,
)

// ErrNotApplicationOwner - отклик принадлежит другому кандидату.
var ErrNotApplicationOwner = New(
	CodeForbidden,
	"careers",
	"Application belongs to another applicant",
	http.StatusForbidden,
)

// ErrInvalidApplicationStatus - переданный статус не входит в допустимый набор.
var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"careers",
	"Unknown application status",
	http.StatusBadRequest,
)
