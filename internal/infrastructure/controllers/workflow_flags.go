package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdoctor/internal/domain/commands"
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/decision"
)

// AddPersistentFlags adds the flags shared by every workflow to the root command.
func AddPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to config file (default: auto-detect)")
	flags.StringP("manager", "m", "", "Package manager to use (npm, yarn, pnpm)")
	flags.Bool(entities.ManagerNpm, false, "Use npm")
	flags.Bool(entities.ManagerYarn, false, "Use yarn")
	flags.Bool(entities.ManagerPnpm, false, "Use pnpm")
	flags.Bool("dry-run", false, "Show what would be done without making changes")
	flags.BoolP("verbose", "v", false, "Enable verbose output")
	flags.String("report", "", "Write a JSON summary of the run to this path")
	flags.Bool("non-interactive", false, "Never prompt; answer from the config file and flags")
	cmd.MarkFlagsMutuallyExclusive("manager", entities.ManagerNpm, entities.ManagerYarn, entities.ManagerPnpm)
}

// buildWorkflowOptions merges the settings file, the environment and the
// command-line flags into the options of one run. Flags win.
func buildWorkflowOptions(
	cmd *cobra.Command,
	args []string,
	prompt repositories.DecisionRepository,
) (commands.WorkflowOptions, error) {
	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	configPath, _ := cmd.Flags().GetString("config")
	settings, err := entities.LoadSettings(configPath, projectDir)
	if err != nil {
		return commands.WorkflowOptions{}, err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")

	report := settings.Report
	if flagReport, _ := cmd.Flags().GetString("report"); flagReport != "" {
		report = flagReport
	}

	preset, err := flagAnswers(cmd)
	if err != nil {
		return commands.WorkflowOptions{}, err
	}

	var decider repositories.DecisionRepository = decision.NewPresetDecisionRepository(preset, prompt)
	if nonInteractive {
		decider = decision.NewScriptedDecisionRepository(mergeAnswers(settings.Answers, preset))
	}

	return commands.WorkflowOptions{
		ProjectDir:    projectDir,
		Manager:       managerFlag(cmd, settings.Manager),
		DetectManager: settings.DetectManager,
		DryRun:        dryRun,
		Verbose:       verbose,
		ReportPath:    report,
		Decider:       decider,
	}, nil
}

// AddAnswerFlags adds the flags answering the analyze decisions ahead of time.
func AddAnswerFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("update-wanted", false, `Update outdated dependencies to "wanted" without asking`)
	cmd.Flags().Bool("audit-tool", false, "Install the auxiliary audit tool without asking when the manager needs one")
	cmd.Flags().String("vulnerabilities", "", "Vulnerability remediation without asking: latest, fix or ignore")
}

// flagAnswers collects the answers given explicitly on the command line.
func flagAnswers(cmd *cobra.Command) (entities.Answers, error) {
	answers := entities.Answers{
		UpdateWanted:     boolAnswer(cmd, "update-wanted"),
		InstallAuditTool: boolAnswer(cmd, "audit-tool"),
	}
	if flag := cmd.Flags().Lookup("vulnerabilities"); flag != nil && flag.Value.String() != "" {
		if _, err := entities.ParseVulnerabilityStrategy(flag.Value.String()); err != nil {
			return entities.Answers{}, err
		}
		answers.Vulnerabilities = flag.Value.String()
	}
	return answers, nil
}

// mergeAnswers overlays the command-line answers on the configured ones.
func mergeAnswers(configured, preset entities.Answers) entities.Answers {
	if preset.UpdateWanted != nil {
		configured.UpdateWanted = preset.UpdateWanted
	}
	if preset.InstallAuditTool != nil {
		configured.InstallAuditTool = preset.InstallAuditTool
	}
	if preset.Vulnerabilities != "" {
		configured.Vulnerabilities = preset.Vulnerabilities
	}
	return configured
}

// managerFlag returns the manager picked on the command line, or fallback.
func managerFlag(cmd *cobra.Command, fallback string) string {
	for _, name := range []string{entities.ManagerNpm, entities.ManagerYarn, entities.ManagerPnpm} {
		if selected, _ := cmd.Flags().GetBool(name); selected {
			return name
		}
	}
	if name, _ := cmd.Flags().GetString("manager"); name != "" {
		return name
	}
	return fallback
}

// boolAnswer returns the value of a boolean flag only when it was set explicitly.
func boolAnswer(cmd *cobra.Command, name string) *bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &value
}
