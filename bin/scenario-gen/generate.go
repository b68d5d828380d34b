package main

import (
	"fmt"
	"strings"

	"github.com/kyokomi/emoji"
	"github.com/spf13/cobra"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/config"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/log"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/factory"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/render"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/stringutils"
)

type generateOptions struct {
	snapshotFile string
	count        int
	format       string
	seed         int64
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random scenarios bound to the cluster components",
		Long: `generate prints randomized scenarios picked among the enabled ones of the config.
The cluster is discovered live unless a snapshot file is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("count") {
				cfg.Count = opts.count
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = opts.format
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opts.seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var (
				snapshot *types.ClusterComponents
				err      error
			)
			if opts.snapshotFile != "" {
				snapshot, err = config.LoadSnapshot(opts.snapshotFile)
			} else {
				snapshot, err = discover(cmd.Context())
			}
			if err != nil {
				return err
			}

			r := rng.New(cfg.Seed)
			f := factory.New(factory.DefaultRegistry(), r)
			for i := 0; i < cfg.Count; i++ {
				s, err := f.GenerateRandomScenario(cmd.Context(), cfg.Scenarios, snapshot)
				if err != nil {
					if cerrors.GetErrorType(err) == cerrors.ErrorTypeMissingScenario {
						log.Warnf("enable at least one of %s in the scenario section of the config",
							strings.Join(factory.DefaultRegistry().Keys(), ", "))
					}
					return err
				}
				runID := stringutils.GetRunID(r)
				fields := toFields(render.Summary(s))
				fields["RunID"] = runID
				log.InfoWithValues(emoji.Sprintf(":zap: generated %s", s.Name()), fields)
				fmt.Fprintln(cmd.OutOrStdout(), format(s, runID, cfg.Output.Format))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.snapshotFile, "snapshot", "s", "", "snapshot file written by discover, skips live discovery")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of scenarios to generate")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.OutputEnv, "output format, env or cli")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks a time based one")
	return cmd
}

func format(s scenario.Scenario, runID, outputFormat string) string {
	if outputFormat == config.OutputCLI {
		return render.CommandLine("krknctl", s)
	}
	return "# " + s.Name() + " run=" + runID + "\n" + strings.Join(render.EnvVars(s), "\n")
}

func toFields(summary map[string]string) map[string]interface{} {
	fields := make(map[string]interface{}, len(summary))
	for k, v := range summary {
		fields[k] = v
	}
	return fields
}
