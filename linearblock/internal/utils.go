package internal

import (
	mat "github.com/nathanhack/sparsemat"
)

//ValidateHGMatrices tests if G*H.T ==0 where H.T is the transpose of H
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	rows, gcols := G.Dims()
	cols, hcols := H.Dims()
	if gcols != hcols {
		return false
	}

	//we cache the rows of H, the columns of H.T, so
	// we don't have to take the actual H.T() then doing this
	cache := make([]mat.SparseVector, cols)
	for i := 0; i < cols; i++ {
		cache[i] = H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := G.Row(i)
		for j := 0; j < cols; j++ {
			//equiv to G*H.T
			if row.Dot(cache[j]) > 0 {
				return false
			}
		}
	}

	return true
}
