//go:build !unix

package deps

import "os"

func canExecute(_ string, info os.FileInfo) bool {
	return info.Mode().IsRegular()
}
