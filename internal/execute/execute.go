package execute

import (
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/ThatOtherAndrew/qdollar/pkg/qdollar"
)

// Command starts the command bound to a recognized gesture in its own
// session and returns without waiting for it. The gesture name and score
// are passed in QDOLLAR_GESTURE and QDOLLAR_SCORE.
func Command(command string, res qdollar.Result) error {
	if command == "" {
		return nil
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Env = append(os.Environ(),
		"QDOLLAR_GESTURE="+res.Name,
		"QDOLLAR_SCORE="+strconv.FormatFloat(res.Score, 'f', 3, 64),
	)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
