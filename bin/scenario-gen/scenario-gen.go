package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	// Uncomment to load all auth plugins
	// _ "k8s.io/client-go/plugin/pkg/client/auth"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/clients"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/config"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/discovery"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/log"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/telemetry"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
)

type rootOptions struct {
	configFile   string
	kubeconfig   string
	verbosity    int
	metricsAddr  string
	otlpEndpoint string
}

var (
	options  rootOptions
	cfg      *config.Config
	shutdown []func(context.Context) error
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableSorting:         true,
		DisableLevelTruncation: true,
	})
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario-gen",
		Short: "Generate cluster aware chaos scenarios",
		Long: `scenario-gen discovers the namespaces, pods and nodes of a Kubernetes cluster
and generates randomized chaos scenarios bound to them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVarP(&options.configFile, "config", "c", "", "path to the config file (default: ./scenario-gen.yaml)")
	cmd.PersistentFlags().StringVar(&options.kubeconfig, "kubeconfig", "", "path to kubeconfig (default: ~/.kube/config)")
	cmd.PersistentFlags().CountVarP(&options.verbosity, "verbose", "v", "increase log verbosity, repeat for trace logs")
	cmd.PersistentFlags().StringVar(&options.metricsAddr, "metrics-addr", "", "address serving prometheus metrics, disabled when empty")
	cmd.PersistentFlags().StringVar(&options.otlpEndpoint, "otlp-endpoint", "", "otlp grpc endpoint receiving traces, disabled when empty")

	cmd.AddCommand(newDiscoverCmd(), newGenerateCmd())
	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	log.SetVerbosity(options.verbosity)

	var err error
	cfg, err = config.LoadConfig(options.configFile)
	if err != nil {
		return err
	}
	if options.kubeconfig != "" {
		cfg.KubeConfig = options.kubeconfig
	}
	if options.metricsAddr != "" {
		cfg.Telemetry.MetricsAddress = options.metricsAddr
	}
	if options.otlpEndpoint != "" {
		cfg.Telemetry.OTLPEndpoint = options.otlpEndpoint
	}

	ctx := cmd.Context()
	otelShutdown, err := telemetry.InitOTelSDK(ctx, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		return err
	}
	shutdown = append(shutdown, otelShutdown)

	reg := prometheus.NewRegistry()
	metricsShutdown, err := telemetry.InitMetrics(ctx, reg)
	if err != nil {
		return err
	}
	shutdown = append(shutdown, metricsShutdown)

	if cfg.Telemetry.MetricsAddress != "" {
		serveMetrics(cfg.Telemetry.MetricsAddress, reg)
	}
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", telemetry.MetricsHandler(reg))
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	shutdown = append(shutdown, server.Shutdown)

	go func() {
		log.Infof("[Metrics]: serving prometheus metrics on %s/metrics", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("metrics server stopped, err: %v", err)
		}
	}()
}

func teardown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, fn := range shutdown {
		if err := fn(ctx); err != nil {
			log.Debugf("telemetry shutdown, err: %v", err)
		}
	}
	shutdown = nil
}

// discover builds the clientsets from the config and runs a discovery
func discover(ctx context.Context) (*types.ClusterComponents, error) {
	clientSets := clients.ClientSets{
		Retry: clients.RetryPolicy{Attempts: cfg.Discovery.Attempts, Wait: cfg.Discovery.Wait},
	}
	if err := clientSets.GenerateClientSetFromKubeConfig(cfg.KubeConfig); err != nil {
		return nil, err
	}

	var opts []discovery.Option
	if !cfg.Discovery.Metrics {
		opts = append(opts, discovery.WithMetricsSource(nil))
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Discovery.Timeout)
	defer cancel()

	return discovery.New(&clientSets, opts...).Discover(ctx, discovery.Patterns{
		Namespace: cfg.ClusterComponents.Namespace,
		PodLabel:  cfg.ClusterComponents.PodLabel,
		NodeLabel: cfg.ClusterComponents.NodeLabel,
	})
}

func main() {
	ctx := telemetry.GetTraceParentContext()
	err := newRootCmd().ExecuteContext(ctx)
	teardown()
	if err != nil {
		rootCause, errCode := cerrors.GetRootCauseAndErrorCode(err)
		log.ErrorWithValues(rootCause, map[string]interface{}{"ErrorCode": errCode})
		os.Exit(1)
	}
}
