package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces"
)

// execDumpReader delegates every operation to an external dump reader program:
//
//	<command> [args...] <operation> --license <license> <dump>
//
// It holds no mutable state and is safe for concurrent use.
type execDumpReader struct {
	command     string
	args        []string
	licensePath string
	timeout     time.Duration
	operations  entities.ReaderOperations
	logger      interfaces.Logger
}

// NewExecDumpReader locates the dump reader program and binds it to a license.
// A program that cannot be found is an initialization error.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewExecDumpReader(config entities.ReaderConfig, licensePath string, logger interfaces.Logger) (*execDumpReader, error) {
	if config.Command == "" {
		return nil, entities.NewDumpError(entities.KindInitialization, entities.OpOpen, licensePath,
			errors.New("no dump reader command configured"))
	}

	command, err := exec.LookPath(config.Command)
	if err != nil {
		return nil, entities.NewDumpError(entities.KindInitialization, entities.OpOpen, licensePath,
			fmt.Errorf("unable to find the Build Scan dump reader: %w", err))
	}

	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	return &execDumpReader{
		command:     command,
		args:        append([]string(nil), config.Args...),
		licensePath: licensePath,
		timeout:     timeout,
		operations:  config.Operations,
		logger:      interfaces.OrNoOp(logger),
	}, nil
}

// ReadBuildToolType returns the tool type tag printed by the program
func (r *execDumpReader) ReadBuildToolType(ctx context.Context, dumpPath string) (string, error) {
	out, err := r.run(ctx, entities.OpReadBuildToolType, r.operations.BuildToolType, dumpPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ReadGradleBuildScanDump returns the JSON text fields printed by the program
func (r *execDumpReader) ReadGradleBuildScanDump(ctx context.Context, dumpPath string) (*entities.RawBuildScanDump, error) {
	return r.readRawDump(ctx, entities.OpReadGradleScanDump, r.operations.Gradle, dumpPath, entities.BuildToolGradle)
}

// ReadMavenBuildScanDump returns the JSON text fields printed by the program
func (r *execDumpReader) ReadMavenBuildScanDump(ctx context.Context, dumpPath string) (*entities.RawBuildScanDump, error) {
	return r.readRawDump(ctx, entities.OpReadMavenScanDump, r.operations.Maven, dumpPath, entities.BuildToolMaven)
}

func (r *execDumpReader) readRawDump(ctx context.Context, op, operation, dumpPath string, toolType entities.BuildToolType) (*entities.RawBuildScanDump, error) {
	out, err := r.run(ctx, op, operation, dumpPath)
	if err != nil {
		return nil, err
	}

	envelope, err := decodeDumpEnvelope(out)
	if err != nil {
		return nil, entities.NewDumpError(entities.KindRead, op, dumpPath, err)
	}
	// The program may omit the tool type from its output; a recorded one must match
	if envelope.BuildToolType != "" {
		if err := envelope.checkToolType(toolType); err != nil {
			return nil, entities.NewDumpError(entities.KindRead, op, dumpPath, err)
		}
	}

	raw, err := envelope.rawDump()
	if err != nil {
		return nil, entities.NewDumpError(entities.KindParse, op, dumpPath, err)
	}
	return raw, nil
}

func (r *execDumpReader) run(ctx context.Context, op, operation, dumpPath string) ([]byte, error) {
	if operation == "" {
		return nil, entities.NewDumpError(entities.KindUnsupportedOperation, op, dumpPath, nil)
	}

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := make([]string, 0, len(r.args)+4)
	args = append(args, r.args...)
	args = append(args, operation, "--license", r.licensePath, dumpPath)

	//nolint:gosec // G204: the dump reader program is chosen by configuration
	cmd := exec.CommandContext(execCtx, r.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	startTime := time.Now()
	err := cmd.Run()
	r.logger.Debug("Ran Build Scan dump reader",
		interfaces.F("operation", operation),
		interfaces.F("dump", dumpPath),
		interfaces.F("duration", time.Since(startTime)))

	if err != nil {
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("dump reader timed out after %v", r.timeout)
		} else if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, entities.NewDumpError(entities.KindRead, op, dumpPath, err)
	}

	return stdout.Bytes(), nil
}
