package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// readText returns the command's input text: the --file contents, the
// joined arguments, or stdin when neither is given or the only argument is
// "-".
func readText(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", WrapError(err, "Failed to read "+file, "")
		}
		return string(data), nil
	case len(args) == 0 || (len(args) == 1 && args[0] == "-"):
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		return strings.Join(args, " "), nil
	}
}

// valuesFile is the field id to text mapping read by check and form.
type valuesFile map[string]string

func readValues(path string) (valuesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(err, "Failed to read values file "+path, "")
	}
	var values valuesFile
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, WrapError(err, "Failed to parse values file "+path,
			"Values files map field ids to text, e.g. 'title: Hello'")
	}
	return values, nil
}
