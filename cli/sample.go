package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"samplers/dist"
)

// sampleFlags are shared by every sampling subcommand.
type sampleFlags struct {
	numExperiments int
	seed           uint64
}

func (f *sampleFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.numExperiments, "num_experiments", "N", 1,
		"The number of experiments to perform.")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0,
		"Seed for the random generator; 0 derives one from the current time.")
}

func emitSamples(cmd *cobra.Command, sampler dist.Sampler, n int) {
	out := cmd.OutOrStdout()
	for i := 0; i < n; i++ {
		fmt.Fprintln(out, sampler.Sample())
	}
}

func newGaussianCommand() *cobra.Command {
	var flags sampleFlags
	var mean, variance float64
	cmd := &cobra.Command{
		Use:   "gaussian",
		Short: "Sample from a normal distribution 𝓝（μ, σ²）",
		RunE: func(cmd *cobra.Command, args []string) error {
			sampler, err := dist.Gaussian(mean, variance, dist.NewSource(flags.seed))
			if err != nil {
				return err
			}
			emitSamples(cmd, sampler, flags.numExperiments)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64VarP(&mean, "mean", "m", 0.0,
		"The mean of the normal random variable, μ.")
	cmd.Flags().Float64VarP(&variance, "variance", "v", 1.0,
		"The variance of the normal random variable, σ².")
	return cmd
}

func newPoissonCommand() *cobra.Command {
	var flags sampleFlags
	var lambda float64
	cmd := &cobra.Command{
		Use:   "poisson",
		Short: "Sample from a Poisson distribution Pois(λ)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sampler, err := dist.Poisson(lambda, dist.NewSource(flags.seed))
			if err != nil {
				return err
			}
			emitSamples(cmd, sampler, flags.numExperiments)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64VarP(&lambda, "lambda", "l", 1.0,
		"The mean and variance of the Poisson random variable, λ.")
	return cmd
}

func newExponentialCommand() *cobra.Command {
	var flags sampleFlags
	var lambda float64
	cmd := &cobra.Command{
		Use:   "exponential",
		Short: "Sample from an exponential distribution Exp(λ)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sampler, err := dist.Exponential(lambda, dist.NewSource(flags.seed))
			if err != nil {
				return err
			}
			emitSamples(cmd, sampler, flags.numExperiments)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64VarP(&lambda, "lambda", "l", 1.0,
		"The rate of the exponential random variable, λ.")
	return cmd
}

func newUniformCommand() *cobra.Command {
	var flags sampleFlags
	var lower, upper float64
	var uniformType string
	cmd := &cobra.Command{
		Use:   "uniform",
		Short: "Sample from a uniform distribution Uniform(a, b)",
		Long: "A continuous uniform distribution is sampled over [lower, upper), " +
			"while a discrete uniform distribution is sampled over {lower, lower+1, ..., upper}.",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := dist.NewSource(flags.seed)
			var sampler dist.Sampler
			var err error
			switch uniformType {
			case "continuous":
				sampler, err = dist.ContinuousUniform(lower, upper, src)
			case "discrete":
				sampler, err = dist.DiscreteUniform(int64(lower), int64(upper), src)
			default:
				err = fmt.Errorf("unknown uniform type %q", uniformType)
			}
			if err != nil {
				return err
			}
			emitSamples(cmd, sampler, flags.numExperiments)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64VarP(&lower, "lower", "a", 0,
		"The lower bound of the uniform random variable.")
	cmd.Flags().Float64VarP(&upper, "upper", "b", 1,
		"The upper bound of the uniform random variable.")
	cmd.Flags().StringVarP(&uniformType, "type", "t", "continuous",
		"Whether to use continuous or discrete uniform distribution.")
	return cmd
}

func newBinomialCommand() *cobra.Command {
	var flags sampleFlags
	var trials uint64
	var probability float64
	cmd := &cobra.Command{
		Use:   "binomial",
		Short: "Sample from a binomial distribution Bin(n, p)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sampler, err := dist.Binomial(trials, probability, dist.NewSource(flags.seed))
			if err != nil {
				return err
			}
			emitSamples(cmd, sampler, flags.numExperiments)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Uint64VarP(&trials, "num-trials", "n", 1,
		"The number of independent trials to perform.")
	cmd.Flags().Float64VarP(&probability, "probability", "p", 0.5,
		"The probability of success for each trial.")
	return cmd
}
