//go:build !libpostal

package postal

const Available = false

func Parse(string) (Components, error) {
	return Components{}, ErrUnavailable
}
