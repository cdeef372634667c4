package nn

import (
	"gonum.org/v1/gonum/mat"
)

// NeuralNetwork implements a two-layer feed-forward network trained with
// batch gradient descent.
//
// Performs the transformation: y = sigmoid(x @ W_ih) @ W_ho
// where:
//   - x is the input matrix with shape [n_records, input_nodes]
//   - W_ih is the input-to-hidden weight matrix with shape [input_nodes, hidden_nodes]
//   - W_ho is the hidden-to-output weight matrix with shape [hidden_nodes, output_nodes]
//
// The sigmoid is applied element-wise to the hidden layer only; the output
// layer is linear, which suits unbounded regression targets such as hourly
// bike-sharing demand. There are no bias terms.
//
// Weights are initialized using scaled normal initialization; see
// ScaledNormal.
//
// Example:
//
//	net := nn.New(56, 10, 1, 1.1)
//	for i := 0; i < 2000; i++ {
//	    net.Train(features, targets)
//	}
//	predictions := net.Run(features)
type NeuralNetwork struct {
	inputNodes  int
	hiddenNodes int
	outputNodes int

	weightsInputToHidden  *mat.Dense // [input_nodes, hidden_nodes]
	weightsHiddenToOutput *mat.Dense // [hidden_nodes, output_nodes]

	// LearningRate scales every weight update. Reassign it between Train
	// calls to change the step size; no method writes it.
	LearningRate float64
}

// New creates a new NeuralNetwork with randomly initialized weights.
//
// Each weight matrix is sampled from a normal distribution with mean 0 and
// standard deviation fan_in^-0.5, where fan_in is the matrix's input width.
// Dimensions are trusted as given; a non-positive dimension panics inside
// the matrix construction.
//
// Parameters:
//   - inputNodes: Number of input features
//   - hiddenNodes: Number of hidden units
//   - outputNodes: Number of output values
//   - learningRate: Scale of each gradient step
//
// Returns a new NeuralNetwork.
func New(inputNodes, hiddenNodes, outputNodes int, learningRate float64) *NeuralNetwork {
	return &NeuralNetwork{
		inputNodes:  inputNodes,
		hiddenNodes: hiddenNodes,
		outputNodes: outputNodes,

		weightsInputToHidden:  ScaledNormal(inputNodes, hiddenNodes),
		weightsHiddenToOutput: ScaledNormal(hiddenNodes, outputNodes),

		LearningRate: learningRate,
	}
}

// Train performs one full-batch gradient descent step.
//
// Each row of features is one record with input_nodes columns; rows of
// targets align by position and have output_nodes columns. Every record's
// gradient contribution is accumulated into shared delta matrices, and the
// weights are updated once with the batch-averaged deltas. Repeated calls
// implement multiple training iterations.
//
// Mismatched shapes panic inside the matrix operations; Train adds no
// validation of its own.
//
// Parameters:
//   - features: Input matrix with shape [n_records, input_nodes]
//   - targets: Target matrix with shape [n_records, output_nodes]
func (n *NeuralNetwork) Train(features, targets *mat.Dense) {
	nRecords, featureCols := features.Dims()
	_, targetCols := targets.Dims()

	deltaInputToHidden := mat.NewDense(n.inputNodes, n.hiddenNodes, nil)
	deltaHiddenToOutput := mat.NewDense(n.hiddenNodes, n.outputNodes, nil)

	for r := 0; r < nRecords; r++ {
		x := features.Slice(r, r+1, 0, featureCols)
		y := targets.Slice(r, r+1, 0, targetCols)

		finalOutputs, hiddenOutputs := n.forwardPass(x)
		n.backpropagation(finalOutputs, hiddenOutputs, x, y, deltaInputToHidden, deltaHiddenToOutput)
	}

	n.updateWeights(deltaInputToHidden, deltaHiddenToOutput, nRecords)
}

// Run predicts outputs for the given records.
//
// Accepts a single 1×input_nodes row or a batch with one record per row.
// Returns a matrix with one row of output_nodes predictions per record.
//
// Run reuses the training forward pass and discards the hidden outputs.
func (n *NeuralNetwork) Run(features mat.Matrix) *mat.Dense {
	finalOutputs, _ := n.forwardPass(features)
	return finalOutputs
}

// forwardPass computes both layer outputs for the given records.
//
// hiddenOutputs = sigmoid(x @ W_ih)   [n_records, hidden_nodes]
// finalOutputs = hiddenOutputs @ W_ho [n_records, output_nodes]
//
// The output layer has no activation. Pure with respect to the network:
// given fixed weights, the same input always produces the same outputs.
func (n *NeuralNetwork) forwardPass(x mat.Matrix) (finalOutputs, hiddenOutputs *mat.Dense) {
	hiddenOutputs = new(mat.Dense)
	hiddenOutputs.Mul(x, n.weightsInputToHidden)
	hiddenOutputs.Apply(applySigmoid, hiddenOutputs)

	finalOutputs = new(mat.Dense)
	finalOutputs.Mul(hiddenOutputs, n.weightsHiddenToOutput)

	return finalOutputs, hiddenOutputs
}

// backpropagation accumulates one record's gradient contribution into the
// batch delta matrices. The weight matrices themselves are not touched.
//
// The output error term equals the raw error y - finalOutputs because the
// output activation is the identity. The hidden error term scales the
// backpropagated error by the sigmoid derivative, computed from the
// already-activated hidden outputs.
func (n *NeuralNetwork) backpropagation(finalOutputs, hiddenOutputs *mat.Dense, x, y mat.Matrix, deltaInputToHidden, deltaHiddenToOutput *mat.Dense) {
	outputErrorTerm := new(mat.Dense)
	outputErrorTerm.Sub(y, finalOutputs)

	// Distribute the output error backwards through W_ho.
	hiddenError := new(mat.Dense)
	hiddenError.Mul(outputErrorTerm, n.weightsHiddenToOutput.T())

	slope := new(mat.Dense)
	slope.Apply(applySigmoidDerivative, hiddenOutputs)

	hiddenErrorTerm := new(mat.Dense)
	hiddenErrorTerm.MulElem(hiddenError, slope)

	// Outer products: layer input transposed against the layer's error term.
	adjInputToHidden := new(mat.Dense)
	adjInputToHidden.Mul(x.T(), hiddenErrorTerm)
	deltaInputToHidden.Add(deltaInputToHidden, adjInputToHidden)

	adjHiddenToOutput := new(mat.Dense)
	adjHiddenToOutput.Mul(hiddenOutputs.T(), outputErrorTerm)
	deltaHiddenToOutput.Add(deltaHiddenToOutput, adjHiddenToOutput)
}

// updateWeights applies one batch-averaged gradient step in place:
//
//	W_ih += learningRate * deltaInputToHidden / nRecords
//	W_ho += learningRate * deltaHiddenToOutput / nRecords
//
// The error terms are computed as target minus prediction, so adding the
// scaled deltas descends the squared error.
func (n *NeuralNetwork) updateWeights(deltaInputToHidden, deltaHiddenToOutput *mat.Dense, nRecords int) {
	step := n.LearningRate / float64(nRecords)

	adjInputToHidden := new(mat.Dense)
	adjInputToHidden.Scale(step, deltaInputToHidden)
	n.weightsInputToHidden.Add(n.weightsInputToHidden, adjInputToHidden)

	adjHiddenToOutput := new(mat.Dense)
	adjHiddenToOutput.Scale(step, deltaHiddenToOutput)
	n.weightsHiddenToOutput.Add(n.weightsHiddenToOutput, adjHiddenToOutput)
}

// InputNodes returns the number of input features.
func (n *NeuralNetwork) InputNodes() int {
	return n.inputNodes
}

// HiddenNodes returns the number of hidden units.
func (n *NeuralNetwork) HiddenNodes() int {
	return n.hiddenNodes
}

// OutputNodes returns the number of output values.
func (n *NeuralNetwork) OutputNodes() int {
	return n.outputNodes
}

// WeightsInputToHidden returns the live input-to-hidden weight matrix.
//
// The returned matrix is the network's own storage, not a copy: writes to
// it change the network. Callers can overwrite entries to seed known
// weights or inspect them between training steps.
func (n *NeuralNetwork) WeightsInputToHidden() *mat.Dense {
	return n.weightsInputToHidden
}

// WeightsHiddenToOutput returns the live hidden-to-output weight matrix.
//
// The returned matrix is the network's own storage, not a copy.
func (n *NeuralNetwork) WeightsHiddenToOutput() *mat.Dense {
	return n.weightsHiddenToOutput
}
