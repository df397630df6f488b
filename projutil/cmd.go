/*
Copyright © 2023 the GoProj authors.
This file is part of GoProj.

GoProj is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GoProj is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GoProj.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package projutil holds the command-line interface of GoProj: a cs2cs-like
// point filter and a CRS inspection command.
package projutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spatialproj/goproj"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var log = logrus.New()

// Root is the root command.
var Root = &cobra.Command{
	Use:   "goproj",
	Short: "goproj transforms point coordinates between coordinate reference systems.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
			Cfg.SetConfigFile(cfgFile)
			if err := Cfg.ReadInConfig(); err != nil {
				return fmt.Errorf("reading configuration: %w", err)
			}
		}
		registerAliases(Cfg)
		return nil
	},
	SilenceUsage: true,
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Read points from stdin and write them transformed to stdout.",
	Long: `transform reads whitespace-separated "x y [z]" lines from the standard
input, converts them from the source CRS to the target CRS, and writes one
line per point to the standard output. Malformed or untransformable lines
are reported on the standard error and skipped, unless --strict is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := goproj.NewProj(Cfg.GetString("from"))
		if err != nil {
			return fmt.Errorf("source CRS: %w", err)
		}
		to, err := goproj.NewProj(Cfg.GetString("to"))
		if err != nil {
			return fmt.Errorf("target CRS: %w", err)
		}
		return runTransform(from, to, os.Stdin, os.Stdout,
			Cfg.GetBool("strict"), Cfg.GetInt("digits"))
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [crs]",
	Short: "Print the resolved parameters of a CRS.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := goproj.NewProj(args[0])
		if err != nil {
			return err
		}
		el := p.Ellps()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "projection: %s\n", p.ProjName())
		fmt.Fprintf(w, "latlong:    %v\n", p.IsLatlong())
		fmt.Fprintf(w, "geocent:    %v\n", p.IsGeocent())
		fmt.Fprintf(w, "ellipsoid:  a=%.9g b=%.9g es=%.12g\n", el.A, el.B, el.Es)
		fmt.Fprintf(w, "to_meter:   %g\n", p.ToMeter())
		fmt.Fprintf(w, "prime mer.: %g rad\n", p.PrimeMeridian())
		return nil
	},
}

func init() {
	Cfg = viper.New()

	Root.PersistentFlags().String("config", "", "path to the configuration file")

	flags := transformCmd.Flags()
	flags.StringP("from", "f", "", "source CRS (proj-string or registered code)")
	flags.StringP("to", "t", "", "target CRS (proj-string or registered code)")
	flags.Bool("strict", false, "abort on the first malformed or untransformable line")
	flags.IntP("digits", "d", 6, "number of decimal digits in the output")
	flags.VisitAll(func(f *pflag.Flag) {
		Cfg.BindPFlag(f.Name, f)
	})

	Root.AddCommand(transformCmd, infoCmd)
}

// registerAliases merges the "aliases" table of the configuration file into
// the engine's code registry, so that codes like EPSG:3857 resolve.
func registerAliases(cfg *viper.Viper) {
	for code, s := range cfg.GetStringMap("aliases") {
		goproj.Register(code, cast.ToString(s))
	}
}

// runTransform is the line filter behind the transform command.
func runTransform(from, to *goproj.Proj, r io.Reader, w io.Writer, strict bool, digits int) error {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pt, hasZ, err := parseLine(line)
		if err == nil {
			err = goproj.TransformPoint(from, to, &pt)
		}
		if err != nil {
			if strict {
				return fmt.Errorf("line %d: %w", lineno, err)
			}
			log.WithFields(logrus.Fields{
				"line": lineno,
			}).Error(err)
			continue
		}
		if hasZ {
			fmt.Fprintf(out, "%.*f %.*f %.*f\n", digits, pt.X, digits, pt.Y, digits, pt.Z)
		} else {
			fmt.Fprintf(out, "%.*f %.*f\n", digits, pt.X, digits, pt.Y)
		}
	}
	return scanner.Err()
}

// parseLine reads "x y [z]" from a whitespace-separated line.
func parseLine(line string) (goproj.Point, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return goproj.Point{}, false, fmt.Errorf("expected 2 or 3 fields, got %d", len(fields))
	}
	var vals [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return goproj.Point{}, false, fmt.Errorf("invalid coordinate %q", f)
		}
		vals[i] = v
	}
	return goproj.Point{X: vals[0], Y: vals[1], Z: vals[2]}, len(fields) == 3, nil
}
