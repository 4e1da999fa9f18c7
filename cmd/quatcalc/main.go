// quatcalc is a command-line calculator over the quatx algebra: raw
// quaternion arithmetic, point rotation, and transform-chain evaluation.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/quatx"
	"github.com/comalice/quatx/internal/chainio"
	"github.com/comalice/quatx/pose"
)

var (
	log     *zap.SugaredLogger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "quatcalc",
	Short: "Quaternion and dual-quaternion calculator",
	Long: `quatcalc - quaternion / dual-quaternion calculator.

Examples:
  quatcalc mul 2,3,4,5 2,3,4,5          # Hamilton product
  quatcalc div 2,3,4,5 5,4,3,2          # quaternion division
  quatcalc rotate --axis 0,0,1 --angle 1.5708 --point 1,0,0
  quatcalc compose chain.yaml            # resolve a transform chain`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zap.WarnLevel
		if verbose {
			level = zap.DebugLevel
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		zl, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		log = zl.Sugar()
		return nil
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul <w,x,y,z> <w,x,y,z>",
	Short: "Hamilton product of two quaternions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q1, err := parseQuat(args[0])
		if err != nil {
			return err
		}
		q2, err := parseQuat(args[1])
		if err != nil {
			return err
		}
		log.Debugw("multiplying", "q1", q1, "q2", q2)
		fmt.Println(q1.Mul(q2))
		return nil
	},
}

var divCmd = &cobra.Command{
	Use:   "div <w,x,y,z> <w,x,y,z>",
	Short: "Quaternion division q1 / q2",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q1, err := parseQuat(args[0])
		if err != nil {
			return err
		}
		q2, err := parseQuat(args[1])
		if err != nil {
			return err
		}
		out, err := q1.Div(q2)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var (
	rotateAxis  string
	rotateAngle float64
	rotatePoint string
)

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate a point about an axis",
	RunE: func(cmd *cobra.Command, args []string) error {
		axis, err := parseVec(rotateAxis)
		if err != nil {
			return fmt.Errorf("--axis: %w", err)
		}
		pt, err := parseVec(rotatePoint)
		if err != nil {
			return fmt.Errorf("--point: %w", err)
		}
		p := pose.FromAxisAngle(axis, rotateAngle, pose.Vec3{})
		log.Debugw("rotating", "pose", p)
		fmt.Println(p.TransformPoint(pt))
		return nil
	},
}

var composeCmd = &cobra.Command{
	Use:   "compose <chain.yaml|chain.json>",
	Short: "Resolve a transform chain file into a single rigid transform",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, err := chainio.LoadFile(args[0])
		if err != nil {
			return err
		}
		log.Debugw("loaded chain", "id", chain.ID, "steps", len(chain.Steps))

		resolved, err := chain.Resolve()
		if err != nil {
			return err
		}

		fmt.Printf("chain:       %s (%d steps)\n", chain.ID, len(chain.Steps))
		fmt.Printf("rotation:    %s\n", resolved.Rotation())
		fmt.Printf("translation: %s\n", resolved.Translation())

		sp := resolved.Screw()
		fmt.Printf("screw:       axis %s  angle %.6g  slide %.6g  pitch %.6g\n",
			sp.Axis, sp.Angle, sp.Slide, sp.Pitch)
		return nil
	},
}

func parseQuat(s string) (quatx.Quaternion, error) {
	parts, err := parseFloats(s, 4)
	if err != nil {
		return quatx.Quaternion{}, err
	}
	return quatx.New(parts[0], parts[1], parts[2], parts[3]), nil
}

func parseVec(s string) (pose.Vec3, error) {
	parts, err := parseFloats(s, 3)
	if err != nil {
		return pose.Vec3{}, err
	}
	return pose.Vec3{X: parts[0], Y: parts[1], Z: parts[2]}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %q", n, s)
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad component %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rotateCmd.Flags().StringVar(&rotateAxis, "axis", "0,0,1", "rotation axis as x,y,z")
	rotateCmd.Flags().Float64Var(&rotateAngle, "angle", 0, "rotation angle in radians")
	rotateCmd.Flags().StringVar(&rotatePoint, "point", "1,0,0", "point to rotate as x,y,z")

	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(composeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
