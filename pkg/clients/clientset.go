package clients

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
	"k8s.io/klog/v2"
)

func init() {
	// client-go logs through klog, keep it off the generator output
	klog.SetOutput(io.Discard)
	klog.LogToStderr(false)

	fs := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fs)
}

// ClientSets is a collection of clientSets and kubeConfig needed
type ClientSets struct {
	KubeClient    kubernetes.Interface
	DynamicClient dynamic.Interface
	KubeConfig    *rest.Config
	Retry         RetryPolicy
}

// NewClientSets wraps already built clients, mostly used with the fake clientsets in tests
func NewClientSets(kubeClient kubernetes.Interface, dynamicClient dynamic.Interface) *ClientSets {
	return &ClientSets{
		KubeClient:    kubeClient,
		DynamicClient: dynamicClient,
		Retry:         DefaultRetryPolicy,
	}
}

// GenerateClientSetFromKubeConfig will generate both clientSets (k8s and dynamic) as well as the KubeConfig.
// An empty path falls back to $KUBECONFIG, then ~/.kube/config, then the in-cluster config.
func (clientSets *ClientSets) GenerateClientSetFromKubeConfig(kubeconfig string) error {
	config, err := getKubeConfig(kubeconfig)
	if err != nil {
		return err
	}
	k8sClientSet, err := generateK8sClientSet(config)
	if err != nil {
		return err
	}
	dynamicClientSet, err := dynamic.NewForConfig(config)
	if err != nil {
		return errors.Wrapf(err, "Unable to generate dynamic clientSet, err: %v", err)
	}
	clientSets.KubeClient = k8sClientSet
	clientSets.DynamicClient = dynamicClientSet
	clientSets.KubeConfig = config
	if clientSets.Retry.Attempts == 0 {
		clientSets.Retry = DefaultRetryPolicy
	}
	return nil
}

// getKubeConfig setup the config for access cluster resource
func getKubeConfig(kubeconfig string) (*rest.Config, error) {
	if kubeconfig == "" {
		kubeconfig = os.Getenv("KUBECONFIG")
	}
	if kubeconfig == "" {
		if home := homedir.HomeDir(); home != "" {
			candidate := filepath.Join(home, ".kube", "config")
			if _, err := os.Stat(candidate); err == nil {
				kubeconfig = candidate
			}
		}
	}
	// It uses in-cluster config, if kubeconfig path is not specified
	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to build kubeconfig from '%s'", kubeconfig)
	}
	return config, nil
}

// generateK8sClientSet will generation k8s client
func generateK8sClientSet(config *rest.Config) (*kubernetes.Clientset, error) {
	k8sClientSet, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to generate kubernetes clientSet, err: %v: ", err)
	}
	return k8sClientSet, nil
}
