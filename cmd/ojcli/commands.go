package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/tabwriter"

	"oj_client/internal/app/service"
	"oj_client/internal/domain/model"
	"oj_client/internal/platform/config"
	"oj_client/internal/platform/store"

	"github.com/gosimple/slug"
)

type command struct {
	summary string
	run     func(ctx context.Context, svc *services, args []string) error
}

var commands = map[string]command{
	"problems":   {"list public problems", runProblems},
	"problem":    {"show one problem, optionally saving it to disk", runProblem},
	"contest":    {"show a contest with its problems and anti-cheat status", runContest},
	"submit":     {"submit a source file", runSubmit},
	"rank":       {"show the global ranking", runRank},
	"report":     {"report an anti-cheat violation", runReport},
	"status":     {"show anti-cheat status for a contest or problem", runStatus},
	"violations": {"list anti-cheat violations in a contest", runViolations},
	"modal":      {"show or clear the login prompt shared through Redis", runModal},
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ojcli <command> [flags]")
	fmt.Fprintln(os.Stderr)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-11s %s\n", name, commands[name].summary)
	}
}

func runProblems(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("problems", flag.ExitOnError)
	offset := fs.Int("offset", 0, "first row")
	limit := fs.Int("limit", 20, "page size")
	keyword := fs.String("keyword", "", "title keyword")
	difficulty := fs.String("difficulty", "", "Low, Mid or High")
	tag := fs.String("tag", "", "tag name")
	fs.Parse(args)

	page, err := service.Decode[model.Page[model.Problem]](svc.problems.GetProblemList(ctx, *offset, *limit, map[string]interface{}{
		"keyword":    *keyword,
		"difficulty": *difficulty,
		"tag":        *tag,
	}))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY")
	for _, p := range page.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.DisplayID, p.Title, p.Difficulty)
	}
	tw.Flush()
	fmt.Printf("%d of %d problems\n", len(page.Results), page.Total)
	return nil
}

func runProblem(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("problem", flag.ExitOnError)
	id := fs.String("id", "", "problem display id")
	contestID := fs.Int64("contest", 0, "contest id, for contest problems")
	save := fs.Bool("save", false, "write the statement to OJ_DOWNLOAD_DIR")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	var problem model.Problem
	var err error
	if *contestID != 0 {
		problem, err = service.Decode[model.Problem](svc.contests.GetContestProblem(ctx, *id, *contestID))
	} else {
		problem, err = service.Decode[model.Problem](svc.problems.GetProblem(ctx, *id))
	}
	if err != nil {
		return err
	}

	if *save {
		path, err := saveProblem(problem, downloadDir())
		if err != nil {
			return err
		}
		fmt.Println("saved", path)
		return nil
	}
	return printJSON(problem)
}

// saveProblem writes the statement as an HTML file named after the problem.
func saveProblem(p model.Problem, dir string) (string, error) {
	name := slug.Make(p.DisplayID + " " + p.Title)
	if name == "" {
		name = "problem"
	}
	path := filepath.Join(dir, name+".html")

	// Descriptions arrive as HTML; title and samples are plain text.
	doc := fmt.Sprintf("<h1>%s</h1>\n%s\n<h2>Input</h2>\n%s\n<h2>Output</h2>\n%s\n",
		html.EscapeString(p.Title), p.Description, p.InputDescription, p.OutputDescription)
	for i, sample := range p.Samples {
		doc += fmt.Sprintf("<h3>Sample %d</h3>\n<pre>%s</pre>\n<pre>%s</pre>\n",
			i+1, html.EscapeString(sample.Input), html.EscapeString(sample.Output))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func runContest(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("contest", flag.ExitOnError)
	id := fs.Int64("id", 0, "contest id")
	fs.Parse(args)

	overview, err := svc.contests.LoadOverview(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s, status %s)\n", overview.Contest.Title, overview.Contest.RuleType, overview.Contest.Status)
	if overview.AntiCheat.AntiCheatEnabled {
		fmt.Printf("anti-cheat on, %d violations recorded\n", overview.AntiCheat.ViolationCount)
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range overview.Problems {
		fmt.Fprintf(tw, "%s\t%s\n", p.DisplayID, p.Title)
	}
	return tw.Flush()
}

func runSubmit(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	problemID := fs.Int64("problem", 0, "internal problem id")
	contestID := fs.Int64("contest", 0, "contest id")
	language := fs.String("lang", "C++", "language name")
	file := fs.String("file", "", "source file")
	fs.Parse(args)
	if *problemID == 0 || *file == "" {
		return fmt.Errorf("-problem and -file are required")
	}

	code, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *file, err)
	}
	out, err := service.Decode[model.SubmitCodeResponse](svc.submissions.SubmitCode(ctx, model.SubmitCodeRequest{
		ProblemID: *problemID,
		ContestID: *contestID,
		Language:  *language,
		Code:      string(code),
	}))
	if err != nil {
		return err
	}
	fmt.Println("submission", out.SubmissionID)
	return nil
}

func runRank(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	offset := fs.Int("offset", 0, "first row")
	limit := fs.Int("limit", 30, "page size")
	rule := fs.String("rule", "", "acm or oi")
	fs.Parse(args)

	page, err := service.Decode[model.Page[model.UserRank]](svc.rank.GetUserRank(ctx, *offset, *limit, *rule))
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tUSER\tAC\tSUBMISSIONS\tSCORE")
	for i, r := range page.Results {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n", *offset+i+1, r.User.Username, r.AcceptedNumber, r.SubmissionNumber, r.TotalScore)
	}
	return tw.Flush()
}

func runReport(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	contestID := fs.String("contest", "", "contest id")
	problemID := fs.String("problem", "", "problem id")
	kind := fs.String("type", model.ViolationTabSwitch, "violation type")
	details := fs.String("details", "", "free-form details")
	fs.Parse(args)

	_, err := svc.antiCheat.ReportViolation(ctx, model.ViolationReport{
		ContestID:        *contestID,
		ProblemID:        *problemID,
		ViolationType:    *kind,
		ViolationDetails: *details,
	})
	if err != nil {
		return err
	}
	fmt.Println("reported")
	return nil
}

func runStatus(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	contestID := fs.String("contest", "", "contest id")
	problemID := fs.String("problem", "", "problem id; omit for the contest-wide status")
	fs.Parse(args)

	if *problemID == "" {
		status, err := service.Decode[model.ContestAntiCheatStatus](svc.antiCheat.CheckContestStatus(ctx, *contestID))
		if err != nil {
			return err
		}
		return printJSON(status)
	}
	status, err := service.Decode[model.ProblemAntiCheatStatus](svc.antiCheat.CheckProblemStatus(ctx, *contestID, *problemID))
	if err != nil {
		return err
	}
	return printJSON(status)
}

func runViolations(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("violations", flag.ExitOnError)
	contestID := fs.String("contest", "", "contest id")
	userID := fs.Int64("user", 0, "only this user")
	fs.Parse(args)

	user := ""
	if *userID != 0 {
		user = strconv.FormatInt(*userID, 10)
	}
	violations, err := service.Decode[[]model.Violation](svc.antiCheat.GetViolations(ctx, *contestID, user))
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tUSER\tTYPE\tDETAILS")
	for _, v := range violations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Timestamp.Local().Format("2006-01-02 15:04:05"), v.User.Username, v.ViolationType, v.ViolationDetails)
	}
	return tw.Flush()
}

func runModal(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("modal", flag.ExitOnError)
	closeModal := fs.Bool("close", false, "clear the shared login prompt")
	fs.Parse(args)
	if svc.shared == nil {
		return fmt.Errorf("REDIS_ADDR is not set")
	}
	return reportModal(ctx, svc.shared, *closeModal, os.Stdout)
}

// reportModal prints the shared modal mode and clears it when asked.
func reportModal(ctx context.Context, shared *store.Redis, closeModal bool, w io.Writer) error {
	mode, err := shared.Modal(ctx)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", shared.ModalKey(), err)
	}
	if mode == "" {
		fmt.Fprintln(w, "no modal requested")
		return nil
	}
	fmt.Fprintln(w, "modal:", mode)
	if !closeModal {
		return nil
	}
	if err := shared.CloseModal(ctx); err != nil {
		return fmt.Errorf("failed to clear %s: %w", shared.ModalKey(), err)
	}
	fmt.Fprintln(w, "cleared")
	return nil
}

func downloadDir() string {
	if config.AppConfig == nil || config.AppConfig.DownloadDir == "" {
		return "."
	}
	return config.AppConfig.DownloadDir
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
