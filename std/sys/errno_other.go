//go:build !unix

package sys

func retryable(err error) bool {
	return false
}
