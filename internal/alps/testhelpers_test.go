package alps

// envMap returns a LookupFunc over a fixed set of variables
func envMap(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// fileMap returns a ReadFile func over a fixed set of files
func fileMap(files map[string]string) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		data, ok := files[path]
		if !ok {
			return nil, errNotFound
		}
		return []byte(data), nil
	}
}

type notFoundError struct{}

func (notFoundError) Error() string { return "file not found" }

var errNotFound error = notFoundError{}
