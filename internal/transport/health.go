package transport

import (
	"fmt"
	"net/http"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NewGRPCServer returns a server with recovery, tags, metrics and logging interceptors.
func NewGRPCServer(logger *zap.Logger) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(server)
	return server
}

// Health reports whether the service accepts transaction requests.
type Health struct {
	server *health.Server
}

// NewHealth registers the health service on server. It reports NOT_SERVING until SetServing.
func NewHealth(server *grpc.Server) *Health {
	h := &Health{server: health.NewServer()}
	h.server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(server, h.server)
	return h
}

// SetServing marks the service ready.
func (h *Health) SetServing() {
	h.server.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown marks the service as not serving for the rest of the process lifetime.
func (h *Health) Shutdown() {
	h.server.Shutdown()
}

// NewHealthGateway dials the gRPC server at addr and exposes its health check over REST at
// /healthz. The returned close function releases the connection.
func NewHealthGateway(addr string) (http.Handler, func() error, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial health service %s: %w", addr, err)
	}
	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	return gw, conn.Close, nil
}
