package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/config"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
)

func writeFixtures(t *testing.T, configYAML string) (string, string) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "scenario-gen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0644))

	snapshotPath := filepath.Join(dir, "cluster-components.yaml")
	require.NoError(t, config.SaveSnapshot(snapshotPath, &types.ClusterComponents{
		Namespaces: []types.Namespace{{Name: "default", Pods: []types.Pod{
			{Name: "web-0", Labels: map[string]string{"app": "web"}, Containers: []types.Container{{Name: "nginx"}}},
		}}},
		Nodes: []types.Node{{Name: "node-1", Labels: map[string]string{types.HostnameLabel: "node-1"}}},
	}))
	return configPath, snapshotPath
}

func runGenerate(t *testing.T, args ...string) (string, error) {
	t.Cleanup(func() { options = rootOptions{} })
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	teardown()
	return out.String(), err
}

func TestGenerate_FromSnapshot(t *testing.T) {
	configPath, snapshotPath := writeFixtures(t, `
scenario:
  pod_scenarios:
    enable: true
`)

	out, err := runGenerate(t, "generate", "-c", configPath, "-s", snapshotPath, "-n", "2", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "# pod-scenarios"))
	assert.Contains(t, out, "NAMESPACE=default")
	assert.Contains(t, out, "POD_LABEL=app=web")
}

func TestGenerate_CLIFormat(t *testing.T) {
	configPath, snapshotPath := writeFixtures(t, `
scenario:
  node_cpu_hog:
    enable: true
`)

	out, err := runGenerate(t, "generate", "-c", configPath, "-s", snapshotPath, "-f", "cli")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "krknctl run node-cpu-hog "))
	assert.Contains(t, out, "--node-selector=kubernetes.io/hostname=node-1")
}

func TestGenerate_NoScenarioEnabled(t *testing.T) {
	configPath, snapshotPath := writeFixtures(t, "count: 1\n")

	_, err := runGenerate(t, "generate", "-c", configPath, "-s", snapshotPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios found")
}
