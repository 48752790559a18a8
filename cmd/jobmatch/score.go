package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/config"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/llm"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/logger"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/observability"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/schemas"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/scoring"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

var (
	scoreConfigPath   string
	scoreResumePath   string
	scoreProfilePath  string
	scoreJobPath      string
	scoreAPIKey       string
	scoreModel        string
	scoreOffline      bool
	scoreOfflineRatio float64
	scoreDelegated    bool
	scoreVerbose      bool
	scoreJSONOut      bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against one job specification",
	Long: `Score a candidate against a job and print the match result.

The resume is read as plain text. The job is a JSON document validated
against the job specification schema before scoring. An optional
candidate profile JSON supplies pre-extracted facts (skills, tenure,
education, salary expectation, location) that take precedence over
resume text parsing.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigPath, "config", "c", "", "path to JSON config file")
	scoreCmd.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreProfilePath, "profile", "p", "", "path to candidate profile JSON")
	scoreCmd.Flags().StringVarP(&scoreJobPath, "job", "j", "", "path to job specification JSON (required)")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY env var)")
	scoreCmd.Flags().StringVar(&scoreModel, "model", "", "judge model name")
	scoreCmd.Flags().BoolVar(&scoreOffline, "offline", false, "use the deterministic stub judge instead of the API")
	scoreCmd.Flags().Float64Var(&scoreOfflineRatio, "offline-ratio", 0.7, "fraction of each axis maximum the stub judge awards")
	scoreCmd.Flags().BoolVar(&scoreDelegated, "delegated-narrative", false, "produce the overall explanation with an extra judge call")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "print the full formatted report and debug logs")
	scoreCmd.Flags().BoolVar(&scoreJSONOut, "json", false, "print the raw MatchResult JSON instead of the report")

	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	candidate, err := loadCandidate(scoreResumePath, scoreProfilePath)
	if err != nil {
		return err
	}
	job, err := loadJob(scoreJobPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	judge, closeJudge, err := buildJudge(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeJudge()

	scoringCfg := scoring.DefaultConfig()
	if cfg.JudgeTimeoutSeconds > 0 {
		scoringCfg.JudgeTimeout = time.Duration(cfg.JudgeTimeoutSeconds) * time.Second
	}
	if cfg.DelegatedNarrative {
		scoringCfg.Narrative = scoring.NarrativeDelegated
	}

	evaluator := scoring.NewEvaluator(judge,
		scoring.WithConfig(scoringCfg),
		scoring.WithLogger(log),
	)

	result, err := evaluator.Evaluate(ctx, candidate, job)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	return printResult(result, cfg.Verbose)
}

// resolveConfig merges the optional config file with command-line flags;
// flags the user set explicitly win over file values.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if scoreConfigPath != "" {
		loaded, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	// An explicitly passed flag wins over both the file and the environment.
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = scoreAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = scoreModel
	}
	if cmd.Flags().Changed("offline") {
		cfg.Offline = scoreOffline
	}
	if cmd.Flags().Changed("offline-ratio") {
		cfg.OfflineRatio = scoreOfflineRatio
	}
	if cfg.OfflineRatio == 0 {
		cfg.OfflineRatio = scoreOfflineRatio
	}
	if cmd.Flags().Changed("delegated-narrative") {
		cfg.DelegatedNarrative = scoreDelegated
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Offline && cfg.APIKey == "" {
		return nil, fmt.Errorf("an API key is required unless --offline is set; pass --api-key or set GEMINI_API_KEY")
	}
	return cfg, nil
}

// loadCandidate reads the resume text and, when given, the profile JSON
// carrying pre-extracted candidate facts.
func loadCandidate(resumePath, profilePath string) (*types.CandidateProfile, error) {
	candidate := &types.CandidateProfile{}
	if profilePath != "" {
		data, err := os.ReadFile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file %s: %w", profilePath, err)
		}
		if err := json.Unmarshal(data, candidate); err != nil {
			return nil, fmt.Errorf("failed to parse profile file %s: %w", profilePath, err)
		}
	}

	resume, err := os.ReadFile(resumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", resumePath, err)
	}
	text := strings.TrimSpace(string(resume))
	if text == "" {
		return nil, fmt.Errorf("resume file %s is empty", resumePath)
	}
	candidate.ResumeText = text
	return candidate, nil
}

// loadJob reads the job JSON, checks it against the embedded schema and
// decodes it.
func loadJob(path string) (*types.JobSpecification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	if err := schemas.ValidateJobSpecification(data); err != nil {
		return nil, err
	}
	var job types.JobSpecification
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return &job, nil
}

// buildJudge returns the configured judge and its cleanup func.
func buildJudge(ctx context.Context, cfg *config.Config) (llm.Judge, func(), error) {
	if cfg.Offline {
		return llm.NewStubJudge(cfg.OfflineRatio), func() {}, nil
	}

	var opts []llm.GeminiOption
	if cfg.Model != "" {
		opts = append(opts, llm.WithModel(cfg.Model))
	}
	if cfg.JudgeTimeoutSeconds > 0 {
		opts = append(opts, llm.WithTimeout(time.Duration(cfg.JudgeTimeoutSeconds)*time.Second))
	}
	judge, err := llm.NewGeminiJudge(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, nil, err
	}
	return judge, func() { _ = judge.Close() }, nil
}

// printResult writes either the raw JSON or the formatted report.
// Non-verbose runs get a one-screen summary.
func printResult(result *types.MatchResult, verbose bool) error {
	if scoreJSONOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(result)
		return nil
	}

	fmt.Printf("Match score:    %.1f/100\n", result.MatchScore)
	fmt.Printf("Recommendation: %s\n", result.Recommendation)
	for _, group := range result.Breakdown {
		fmt.Printf("  %-14s %5.1f / %.0f\n", string(group.Name)+":", group.Total(), group.Maximum)
	}
	if len(result.Strengths) > 0 {
		fmt.Printf("Strengths:      %s\n", strings.Join(result.Strengths, "; "))
	}
	if len(result.Weaknesses) > 0 {
		fmt.Printf("Weaknesses:     %s\n", strings.Join(result.Weaknesses, "; "))
	}
	fmt.Println()
	fmt.Println(result.OverallExplanation)
	return nil
}
