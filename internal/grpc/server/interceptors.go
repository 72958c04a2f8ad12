package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/magabrotheeeer/user-service/internal/lib/sl"
)

// RequestIDHeader заголовок метаданных с идентификатором запроса.
const RequestIDHeader = "x-request-id"

const healthServicePrefix = "/grpc.health.v1.Health/"

type requestIDKey struct{}

// RequestIDFromContext возвращает идентификатор запроса, выставленный LoggingInterceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LoggingInterceptor логирует каждый вызов: метод, идентификатор запроса, длительность и код ответа.
// Идентификатор берётся из входящих метаданных или генерируется.
func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		ctx = context.WithValue(ctx, requestIDKey{}, requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		attrs := []any{
			slog.String("method", info.FullMethod),
			slog.String("request_id", requestID),
			slog.Duration("duration", time.Since(start)),
			slog.String("code", code.String()),
		}
		switch code {
		case codes.OK, codes.NotFound, codes.AlreadyExists, codes.InvalidArgument, codes.Canceled:
			log.Info("request completed", attrs...)
		default:
			log.Error("request failed", append(attrs, sl.Err(err))...)
		}
		return resp, err
	}
}

// RecoveryInterceptor превращает панику обработчика в ошибку Internal.
func RecoveryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					slog.String("method", info.FullMethod),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// RateLimitInterceptor отклоняет вызовы сверх лимита с кодом ResourceExhausted.
// Проверки здоровья не ограничиваются.
func RateLimitInterceptor(limiter *rate.Limiter, log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if strings.HasPrefix(info.FullMethod, healthServicePrefix) {
			return handler(ctx, req)
		}
		if !limiter.Allow() {
			log.Warn("too many requests", slog.String("method", info.FullMethod))
			return nil, status.Error(codes.ResourceExhausted, "too many requests")
		}
		return handler(ctx, req)
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDHeader); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	return uuid.NewString()
}
