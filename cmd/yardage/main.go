package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tfunk1030/Test-yardage-sub000/internal/clubs"
	"github.com/tfunk1030/Test-yardage-sub000/internal/config"
	"github.com/tfunk1030/Test-yardage-sub000/internal/physics"
	"github.com/tfunk1030/Test-yardage-sub000/internal/storage"
	"github.com/tfunk1030/Test-yardage-sub000/internal/sweep"
	"github.com/tfunk1030/Test-yardage-sub000/internal/viz"
)

var (
	dataDir  string
	club     string
	skillPct float64
	clubFile string

	configFile string
	preset     string

	temperature float64
	pressure    float64
	humidity    float64
	altitude    float64
	windSpeed   float64
	windDir     float64

	dt      float64
	maxTime float64

	// Explicit launch overrides; set them to skip the club lookup.
	ballSpeed   float64
	launchAngle float64
	spinRate    float64

	sweepAxis string
	sweepFrom float64
	sweepTo   float64
	sweepStep float64
	workers   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "yardage",
		Short: "golf ball flight simulator",
		Long:  "yardage predicts carry, apex and flight time for a struck golf ball\nunder real playing conditions: temperature, pressure, humidity,\naltitude and wind.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".yardage", "data directory")

	shotCmd := &cobra.Command{
		Use:   "shot",
		Short: "simulate one shot",
		RunE:  runShot,
	}
	addShotFlags(shotCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "simulate one shot with live playback",
		RunE:  runLive,
	}
	addShotFlags(liveCmd)

	clubsCmd := &cobra.Command{
		Use:   "clubs",
		Short: "list club profiles",
		RunE:  listClubs,
	}
	clubsCmd.Flags().StringVar(&clubFile, "club-file", "", "custom club set (yaml)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list environment presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "name\ttemp °F\tpressure\thumidity\taltitude ft\twind")
			for _, name := range config.ListPresets() {
				env, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0f\t%.2f\t%.0f%%\t%.0f\t%.0f mph @ %.0f°\n",
					name, env.Temperature, env.Pressure, env.Humidity,
					env.Altitude, env.WindSpeed, env.WindDirection)
			}
			return w.Flush()
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one weather variable and plot carry",
		RunE:  runSweep,
	}
	addShotFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepAxis, "axis", "wind", "variable to sweep: wind, wind-dir, altitude, temperature")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "axis start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 20, "axis end")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 5, "axis step")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = NumCPU)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print a stored run's metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print a stored run's trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(shotCmd, liveCmd, clubsCmd, presetsCmd, sweepCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addShotFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&club, "club", config.DefaultClub, "club name")
	cmd.Flags().Float64Var(&skillPct, "skill", config.DefaultSkillPct, "skill scaling percent (0-100]")
	cmd.Flags().StringVar(&clubFile, "club-file", "", "custom club set (yaml)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "environment preset name")

	cmd.Flags().Float64Var(&temperature, "temp", physics.StandardTemperatureF, "temperature °F")
	cmd.Flags().Float64Var(&pressure, "pressure", physics.StandardPressureInHg, "pressure inHg")
	cmd.Flags().Float64Var(&humidity, "humidity", physics.StandardHumidityPct, "relative humidity %")
	cmd.Flags().Float64Var(&altitude, "altitude", 0, "altitude ft")
	cmd.Flags().Float64Var(&windSpeed, "wind", 0, "wind speed mph")
	cmd.Flags().Float64Var(&windDir, "wind-dir", 0, "wind direction deg (0 = headwind)")

	cmd.Flags().Float64Var(&dt, "dt", 0, "integration timestep s (0 = default)")
	cmd.Flags().Float64Var(&maxTime, "max-time", 0, "safety cutoff s (0 = default)")

	cmd.Flags().Float64Var(&ballSpeed, "speed", 0, "explicit ball speed m/s (overrides club)")
	cmd.Flags().Float64Var(&launchAngle, "angle", 0, "explicit launch angle deg")
	cmd.Flags().Float64Var(&spinRate, "spin", 0, "explicit backspin rpm")
}

// resolveInputs merges config file, preset and flags into the launch
// and environment for one shot. Flags win over the config file; the
// preset replaces the environment wholesale before env flags apply.
func resolveInputs(cmd *cobra.Command) (physics.LaunchConditions, physics.EnvironmentalConditions, physics.Options, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return physics.LaunchConditions{}, physics.EnvironmentalConditions{}, physics.Options{}, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		env, ok := config.GetPreset(preset)
		if !ok {
			return physics.LaunchConditions{}, physics.EnvironmentalConditions{}, physics.Options{}, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg.Env = env
	}

	if cmd.Flags().Changed("club") {
		cfg.Club = club
	}
	if cmd.Flags().Changed("skill") {
		cfg.SkillPct = skillPct
	}
	if cmd.Flags().Changed("club-file") {
		cfg.ClubFile = clubFile
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("max-time") {
		cfg.MaxTime = maxTime
	}

	envFlags := map[string]*float64{
		"temp":     &cfg.Env.Temperature,
		"pressure": &cfg.Env.Pressure,
		"humidity": &cfg.Env.Humidity,
		"altitude": &cfg.Env.Altitude,
		"wind":     &cfg.Env.WindSpeed,
		"wind-dir": &cfg.Env.WindDirection,
	}
	flagValues := map[string]float64{
		"temp": temperature, "pressure": pressure, "humidity": humidity,
		"altitude": altitude, "wind": windSpeed, "wind-dir": windDir,
	}
	for name, dst := range envFlags {
		if cmd.Flags().Changed(name) {
			*dst = flagValues[name]
		}
	}

	var launch physics.LaunchConditions
	if cmd.Flags().Changed("speed") {
		launch = physics.LaunchConditions{
			BallSpeed:   ballSpeed,
			LaunchAngle: launchAngle,
			SpinRate:    spinRate,
		}
		club = "custom"
	} else {
		set := clubs.DefaultSet()
		if cfg.ClubFile != "" {
			loaded, err := clubs.LoadFile(cfg.ClubFile)
			if err != nil {
				return physics.LaunchConditions{}, physics.EnvironmentalConditions{}, physics.Options{}, err
			}
			set = loaded
		}
		var err error
		launch, err = set.Launch(cfg.Club, cfg.SkillPct)
		if err != nil {
			return physics.LaunchConditions{}, physics.EnvironmentalConditions{}, physics.Options{}, err
		}
		club = cfg.Club
		skillPct = cfg.SkillPct
	}

	return launch, cfg.Env, cfg.Options(), nil
}

func runShot(cmd *cobra.Command, args []string) error {
	launch, env, opts, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	trajectory, result, err := physics.Simulate(launch, env, opts)
	if err != nil {
		return describeSimError(err)
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(club, skillPct, launch, env, result, trajectory)
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(club, result))
	fmt.Println(viz.FlightPlot(trajectory, result))
	fmt.Printf("\nrun id: %s (%d steps in %v)\n", runID, len(trajectory), elapsed)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	launch, env, opts, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	trajectory, result, err := physics.Simulate(launch, env, opts)
	if err != nil {
		return describeSimError(err)
	}

	p := tea.NewProgram(viz.NewShot(club, trajectory, result))
	_, err = p.Run()
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	launch, base, opts, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	values := sweep.Steps(sweepFrom, sweepTo, sweepStep)
	grid := sweep.Grid{Base: base}
	var label string
	switch sweepAxis {
	case "wind":
		grid.WindSpeeds, label = values, "wind speed (mph)"
	case "wind-dir":
		grid.WindDirections, label = values, "wind direction (deg)"
	case "altitude":
		grid.Altitudes, label = values, "altitude (ft)"
	case "temperature":
		grid.Temperatures, label = values, "temperature (°F)"
	default:
		return fmt.Errorf("unknown sweep axis %q", sweepAxis)
	}

	runner := &sweep.Runner{Launch: launch, Opts: opts, Workers: workers}
	points, err := runner.Run(context.Background(), grid.Expand())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tcarry yd\tlateral yd\tapex m\ttime s\n", label)
	carries := make([]float64, 0, len(points))
	for i, p := range points {
		if p.Err != nil {
			fmt.Fprintf(w, "%.1f\terror: %v\n", values[i], p.Err)
			continue
		}
		fmt.Fprintf(w, "%.1f\t%.1f\t%+.1f\t%.1f\t%.2f\n",
			values[i], p.Result.CarryDistance, p.Result.LateralDistance,
			p.Result.MaxHeight, p.Result.FlightTime)
		carries = append(carries, p.Result.CarryDistance)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(carries) == len(values) && len(carries) > 1 {
		fmt.Println()
		fmt.Println(viz.CarryCurve(values, carries, label))
	}
	return nil
}

func listClubs(cmd *cobra.Command, args []string) error {
	set := clubs.DefaultSet()
	if clubFile != "" {
		loaded, err := clubs.LoadFile(clubFile)
		if err != nil {
			return err
		}
		set = loaded
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "club\tball speed m/s\tlaunch °\tspin rpm")
	for _, name := range set.Names() {
		p, _ := set.Lookup(name)
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.0f\n", p.Name, p.BallSpeed, p.LaunchAngle, p.SpinRate)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tclub\tcarry yd\tapex m\twhen")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%s\n",
			r.ID, r.Club, r.Result.CarryDistance, r.Result.MaxHeight,
			r.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	trajectory, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(meta.Club, meta.Result))
	fmt.Println(viz.FlightPlot(trajectory, meta.Result))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trajectory, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	fmt.Println("time,x,y,z,vx,vy,vz")
	for _, p := range trajectory {
		fmt.Printf("%g,%g,%g,%g,%g,%g,%g\n",
			p.Time, p.Position.X, p.Position.Y, p.Position.Z,
			p.Velocity.X, p.Velocity.Y, p.Velocity.Z)
	}
	return nil
}

// describeSimError keeps validation messages terse and makes
// non-convergence loud, since the latter is a bug to report.
func describeSimError(err error) error {
	if errors.Is(err, physics.ErrNotConverged) {
		return fmt.Errorf("simulation defect, please file an issue with these inputs: %w", err)
	}
	return err
}
