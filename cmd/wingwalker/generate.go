/*
Copyright © 2024 the WingWalker authors.
This file is part of WingWalker.

WingWalker is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

WingWalker is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with WingWalker.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/wingwalker/internal/config"
	"github.com/spatialmodel/wingwalker/model"
	"github.com/spatialmodel/wingwalker/wing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a wing from a request",
	Long: `generate builds the wing described by a request file (or by the [request]
table of the config file) and writes its point cloud. Output ending in .csv
is written as section,x,y,z rows; output ending in .bin is written as
little-endian float64 x,y,z triples; "-" writes CSV to standard output.
With --watch the wing is rebuilt each time the request file changes.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("request", "", "wing request file (TOML)")
	generateCmd.Flags().String("out", "", "point cloud output file (.csv, .bin, or - for stdout)")
	generateCmd.Flags().Bool("watch", false, "regenerate whenever the request file changes")
	_ = viper.BindPFlag("output", generateCmd.Flags().Lookup("out"))
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("request")
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && path == "" {
		return fmt.Errorf("wingwalker: --watch needs --request")
	}
	a := wing.Assembler{Workers: cfg.Workers, Log: logrus.StandardLogger()}

	run := func() error {
		req, err := resolveRequest(path, cfg)
		if err != nil {
			return err
		}
		m, err := a.Generate(req)
		if err != nil {
			return err
		}
		summary := cmd.OutOrStdout()
		if cfg.Output == "-" {
			summary = cmd.ErrOrStderr()
		}
		fmt.Fprintln(summary, m)
		return writeCloud(cmd.OutOrStdout(), cfg.Output, m)
	}
	if err := run(); err != nil {
		if !watch {
			return err
		}
		logrus.WithError(err).Error("generating wing")
	}
	if !watch {
		return nil
	}
	return watchRequest(cmd.Context(), path, run, logrus.StandardLogger())
}

// resolveRequest reads the request at path, or the inline request from cfg
// when path is empty. A relative spec_file in a request file is taken
// relative to the request file's directory.
func resolveRequest(path string, cfg config.Config) (model.WingRequest, error) {
	if path == "" {
		if len(cfg.Request) == 0 {
			return model.WingRequest{}, fmt.Errorf("wingwalker: no request: use --request or a [request] table in the config file")
		}
		return model.RequestFromSettings(cfg.Request)
	}
	req, err := model.LoadRequest(path)
	if err != nil {
		return model.WingRequest{}, err
	}
	if req.SpecFile != "" && !filepath.IsAbs(req.SpecFile) {
		req.SpecFile = filepath.Join(filepath.Dir(path), req.SpecFile)
	}
	return req, nil
}

// writeCloud writes the point cloud of m to out, in the format named by
// its extension.
func writeCloud(stdout io.Writer, out string, m *wing.Model) error {
	switch {
	case out == "":
		return nil
	case out == "-":
		return writeCSV(stdout, m)
	}
	var data []byte
	switch strings.ToLower(filepath.Ext(out)) {
	case ".csv":
		var b strings.Builder
		if err := writeCSV(&b, m); err != nil {
			return err
		}
		data = []byte(b.String())
	case ".bin":
		var err error
		if data, err = m.PointCloud().MarshalBinary(); err != nil {
			return err
		}
	default:
		return &model.FormatError{Kind: "output format", Value: filepath.Ext(out)}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("wingwalker: writing point cloud: %w", err)
	}
	logrus.WithFields(logrus.Fields{"file": out, "points": m.PointCloud().Len()}).Info("wrote point cloud")
	return nil
}

func writeCSV(w io.Writer, m *wing.Model) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"section", "x", "y", "z"}); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for i := 0; i < m.Len(); i++ {
		for _, p := range m.Ring(i) {
			if err := cw.Write([]string{strconv.Itoa(i), f(p.X), f(p.Y), f(p.Z)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("wingwalker: writing csv: %w", err)
	}
	return nil
}
