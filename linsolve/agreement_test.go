package linsolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numkit/linsolve"
	"github.com/katalvlaran/numkit/matrix"
)

// AgreementSuite runs every solver on the same diagonally dominant system
// and checks each answer against gonum's pivoted LU.
type AgreementSuite struct {
	suite.Suite
	a    *matrix.Dense
	b    []float64
	want []float64
}

func (s *AgreementSuite) SetupTest() {
	var err error
	s.a, err = matrix.NewDenseFrom([][]float64{
		{4, -1, 1},
		{-1, 4, -2},
		{1, -2, 4},
	})
	require.NoError(s.T(), err)
	s.b = []float64{12, -1, 5}

	g, err := matrix.ToGonum(s.a)
	require.NoError(s.T(), err)
	var x mat.VecDense
	require.NoError(s.T(), x.SolveVec(g, mat.NewVecDense(3, s.b)))
	s.want = x.RawVector().Data
	require.InDeltaSlice(s.T(), []float64{3, 1, 1}, s.want, 1e-12)
}

// TestGaussJordan checks the one-pass elimination.
func (s *AgreementSuite) TestGaussJordan() {
	x, err := linsolve.GaussJordan(s.a, s.b)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), s.want, x, 1e-12)
}

// TestSolveLU checks decomposition plus substitution.
func (s *AgreementSuite) TestSolveLU() {
	x, err := linsolve.SolveLU(s.a, s.b)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), s.want, x, 1e-12)
}

// TestJacobi checks convergence within a bounded number of sweeps.
func (s *AgreementSuite) TestJacobi() {
	res, err := linsolve.Jacobi(s.a, s.b)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), s.want, res.X, 1e-6)
	require.LessOrEqual(s.T(), res.Iterations, 100)
	require.LessOrEqual(s.T(), res.Delta, linsolve.DefaultTolerance)
}

// TestGaussSeidel checks convergence and that it needs fewer sweeps than Jacobi.
func (s *AgreementSuite) TestGaussSeidel() {
	gs, err := linsolve.GaussSeidel(s.a, s.b)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), s.want, gs.X, 1e-6)

	jac, err := linsolve.Jacobi(s.a, s.b)
	require.NoError(s.T(), err)
	require.Less(s.T(), gs.Iterations, jac.Iterations)
}

// TestSolveSparse checks the pivoting backend.
func (s *AgreementSuite) TestSolveSparse() {
	x, err := linsolve.SolveSparse(s.a, s.b)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), s.want, x, 1e-10)

	r, err := linsolve.Residual(s.a, x, s.b)
	require.NoError(s.T(), err)
	require.Less(s.T(), r, 1e-10)
}

// Entry point for running the suite.
func TestAgreementSuite(t *testing.T) {
	suite.Run(t, new(AgreementSuite))
}
