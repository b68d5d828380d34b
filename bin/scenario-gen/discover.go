package main

import (
	"github.com/kyokomi/emoji"
	"github.com/spf13/cobra"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/config"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/log"
)

const defaultSnapshotFile = "cluster-components.yaml"

func newDiscoverCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover the cluster components and save them as a snapshot file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = cfg.Output.SnapshotFile
			}
			if output == "" {
				output = defaultSnapshotFile
			}

			snapshot, err := discover(cmd.Context())
			if err != nil {
				return err
			}
			if err := config.SaveSnapshot(output, snapshot); err != nil {
				return err
			}

			unavailable := 0
			for _, n := range snapshot.Nodes {
				if !n.MetricsAvailable() {
					unavailable++
				}
			}
			log.Info(emoji.Sprintf(":mag: discovered %d namespaces, %d pods and %d nodes",
				len(snapshot.Namespaces), snapshot.PodCount(), len(snapshot.Nodes)))
			if unavailable > 0 {
				log.Warn(emoji.Sprintf(":warning: %d nodes have no usable metrics", unavailable))
			}
			log.Infof("[Discovery]: snapshot written to %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "snapshot file, .json writes json (default: "+defaultSnapshotFile+")")
	return cmd
}
