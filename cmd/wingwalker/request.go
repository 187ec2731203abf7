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
	"fmt"

	"github.com/spatialmodel/wingwalker/model"
	"github.com/spf13/cobra"
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Write a template wing request",
	Long: `request writes a wing request in TOML form, for editing and later use with
"wingwalker generate --request". With no --out the request is printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, _ := cmd.Flags().GetString("out")
		req := templateRequest()
		if out == "" {
			return model.EncodeRequest(cmd.OutOrStdout(), req)
		}
		if err := model.SaveRequest(out, req); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

func init() {
	requestCmd.Flags().String("out", "", "file to write the request to")
}

// templateRequest returns a left horizontal stabilizer with a geometric
// planform.
func templateRequest() model.WingRequest {
	req := model.NewRequest()
	req.Name = "Left Stabilizer"
	req.Notes = "Horizontal stabilizer, left side.\nEdit spec_file to point at an airfoil coordinate file."
	req.WingType = model.Elevator(model.Left)
	req.Planform = model.Geometric
	req.SpecFile = "n0012.dat"
	req.SpecFormat = model.Selig
	req.BaseChord = 64
	req.EndChord = 64
	req.Span = 96
	req.Twist = 0
	req.Iterations = 200
	return req
}
