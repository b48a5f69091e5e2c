package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/campus-navigator/pkg/campusdata"
	"github.com/lintang-b-s/campus-navigator/pkg/config"
	"github.com/lintang-b-s/campus-navigator/pkg/logger"
	"github.com/lintang-b-s/campus-navigator/pkg/navigator"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	fs := config.NewFlagSet(os.Args[0])
	cfg, err := config.Load(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal("campus navigator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	campus, err := campusdata.Load(ctx, cfg.Dataset, campusdata.Format(cfg.Format), logger)
	if err != nil {
		return err
	}

	if cfg.ExportGraph != "" {
		if err := campus.Graph.WriteGraph(cfg.ExportGraph); err != nil {
			return fmt.Errorf("export graph: %w", err)
		}
		logger.Info("campus graph exported", zap.String("path", cfg.ExportGraph))
	}

	nav := navigator.NewNavigator(campus, logger)
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	// only the ids missing from the configuration are asked for
	start, end := cfg.Start, cfg.End
	last := nav.NumberOfPlaces() - 1
	if cfg.Interactive() {
		navigator.WritePlaces(out, nav.Places())
	}
	if start < 0 {
		start, err = promptInt(scanner, out, fmt.Sprintf("Choose start place (0-%d): ", last))
	}
	if err == nil && end < 0 {
		end, err = promptInt(scanner, out, fmt.Sprintf("Choose destination (0-%d): ", last))
	}

	var route navigator.Route
	if err == nil {
		route, err = nav.ShortestRoute(start, end)
	}
	if errors.Is(err, navigator.ErrInvalidQuery) {
		fmt.Fprintf(out, "Please choose two places between 0 and %d.\n", last)
		return nil
	}
	if err != nil {
		return err
	}
	navigator.WriteRoute(out, route)
	fmt.Fprintln(out)

	lat, lon, ok, err := config.ParsePosition(cfg.Position)
	if err != nil {
		return err
	}
	if !ok && !cfg.Interactive() {
		return exportGeoJSON(cfg.ExportGeoJSON, route)
	}
	if !ok {
		fmt.Fprint(out, "Enter current position (latitude longitude): ")
		if lat, err = nextFloat(scanner); err == nil {
			lon, err = nextFloat(scanner)
		}
	}

	var parking navigator.Parking
	if err == nil {
		parking, err = nav.NearestParking(lat, lon)
	}
	if errors.Is(err, navigator.ErrInvalidQuery) {
		fmt.Fprintln(out, "Please enter a latitude in [-90, 90] and a longitude in [-180, 180].")
		return exportGeoJSON(cfg.ExportGeoJSON, route)
	}
	if err != nil {
		return err
	}
	navigator.WriteParking(out, parking)
	return exportGeoJSON(cfg.ExportGeoJSON, route, parking)
}

func exportGeoJSON(path string, route navigator.Route, parking ...navigator.Parking) error {
	if path == "" {
		return nil
	}
	buf, err := navigator.RouteGeoJSON(route, parking...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("export geojson: %w", err)
	}
	return nil
}

func nextToken(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func promptInt(scanner *bufio.Scanner, out io.Writer, prompt string) (int, error) {
	fmt.Fprint(out, prompt)
	token, err := nextToken(scanner)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", navigator.ErrInvalidQuery, err)
	}
	return id, nil
}

func nextFloat(scanner *bufio.Scanner) (float64, error) {
	token, err := nextToken(scanner)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", navigator.ErrInvalidQuery, err)
	}
	return f, nil
}
