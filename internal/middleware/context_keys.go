package middleware

type contextKey string

const (
	loggerCtxKey contextKey = "logger"
	userIDCtxKey contextKey = "userID"
)
