package runtime

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultDockerBinary = "docker"

// Runner executes a container CLI command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

type execRunner struct {
	binaryPath string
	log        *logrus.Logger
}

func (r *execRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	entry := r.log.WithField("command", r.binaryPath+" "+strings.Join(args, " "))
	if err != nil {
		entry.WithField("stderr", strings.TrimSpace(stderr.String())).Error(err)
		return "", fmt.Errorf(
			"failed to execute %s %s: '%v' '%s'",
			r.binaryPath,
			strings.Join(args, " "),
			err,
			strings.TrimSpace(stderr.String()),
		)
	}
	entry.Info("executed")
	return stdout.String(), nil
}

// Opts configures a Docker runtime.
type Opts struct {
	// BinaryPath defaults to docker.
	BinaryPath string
	// ExecutionLogPath enables a rotating journal of executed commands.
	ExecutionLogPath string
	// Runner replaces command execution, BinaryPath and ExecutionLogPath are
	// ignored when set.
	Runner Runner
}

// Docker provisions nodes through the docker command line client.
type Docker struct {
	runner Runner
	logger logr.Logger
}

func NewDocker(opts Opts, logger logr.Logger) *Docker {
	runner := opts.Runner
	if runner == nil {
		executionLog := logrus.New()
		executionLog.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableQuote: true})
		executionLog.SetLevel(logrus.FatalLevel)
		if opts.ExecutionLogPath != "" {
			executionLog.SetOutput(&lumberjack.Logger{
				Filename:   opts.ExecutionLogPath,
				MaxSize:    1, // MB
				MaxBackups: 10,
				MaxAge:     7, // days
				Compress:   true,
			})
			executionLog.SetLevel(logrus.InfoLevel)
		}
		binary := opts.BinaryPath
		if binary == "" {
			binary = defaultDockerBinary
		}
		runner = &execRunner{binaryPath: binary, log: executionLog}
	}
	return &Docker{runner: runner, logger: logger.WithName("docker")}
}

func (d *Docker) run(ctx context.Context, node, op string, args ...string) (string, error) {
	out, err := d.runner.Run(ctx, args...)
	return out, errdefs.Command(node, op, err)
}

func (d *Docker) Provision(ctx context.Context, node *Node) (string, error) {
	subnet := node.Subnet.String()
	ip := node.ManagementIP.String()
	labelArg := Label + "=true"

	d.logger.Info("creating network", "node", node.Name, "network", node.Network, "subnet", subnet)
	if _, err := d.run(ctx, node.Name, "create network",
		"network", "create", "-d", "bridge",
		"--subnet="+subnet, "--ip-range="+subnet,
		"--label", labelArg, node.Network); err != nil {
		return "", err
	}

	d.logger.Info("creating container", "node", node.Name, "image", node.Image, "ip", ip)
	if _, err := d.run(ctx, node.Name, "create container",
		"create", "-it", "--privileged",
		"-p", fmt.Sprintf("%s:%d:%d", ip, node.NetconfPort, netconfContainerPort),
		"-p", fmt.Sprintf("%s:%d:%d", ip, sshHostPort, sshContainerPort),
		"--label", labelArg,
		"--name="+node.Name, "--network="+node.Network, node.Image); err != nil {
		return "", err
	}

	if err := d.copyDocuments(ctx, node); err != nil {
		return "", err
	}

	if _, err := d.run(ctx, node.Name, "start container", "start", node.Name); err != nil {
		return "", err
	}

	return d.NamespacePath(ctx, node.Name)
}

func (d *Docker) NamespacePath(ctx context.Context, name string) (string, error) {
	out, err := d.run(ctx, name, "inspect container", "inspect", "-f", "{{.State.Pid}}", name)
	if err != nil {
		return "", err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil || pid <= 0 {
		return "", errdefs.Command(name, "inspect container", fmt.Errorf("unexpected pid %q", strings.TrimSpace(out)))
	}
	return fmt.Sprintf("/proc/%d/ns/net", pid), nil
}

// copyDocuments stages the documents in a temporary directory and copies
// them into the container.
func (d *Docker) copyDocuments(ctx context.Context, node *Node) error {
	if len(node.Documents) == 0 {
		return nil
	}
	dir, err := os.MkdirTemp("", "wte-"+node.Name)
	if err != nil {
		return errdefs.Command(node.Name, "stage documents", err)
	}
	defer os.RemoveAll(dir)

	names := make([]string, 0, len(node.Documents))
	for name := range node.Documents {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, node.Documents[name], 0o600); err != nil { //nolint:mnd
			return errdefs.Command(node.Name, "stage documents", err)
		}
		target := node.Name + ":" + DocumentDirectory + "/" + name
		if _, err := d.run(ctx, node.Name, "copy "+name, "cp", path, target); err != nil {
			return err
		}
	}
	return nil
}

func (d *Docker) Cleanup(ctx context.Context) ([]string, error) {
	filter := "label=" + Label
	out, err := d.run(ctx, "", "list containers", "ps", "-a", "--filter", filter, "--format", "{{.Names}}")
	if err != nil {
		return nil, err
	}
	containers := lines(out)
	for _, container := range containers {
		d.logger.Info("removing container", "container", container)
		if _, err := d.run(ctx, container, "stop container", "stop", container); err != nil {
			return nil, err
		}
		if _, err := d.run(ctx, container, "remove container", "rm", container); err != nil {
			return nil, err
		}
	}

	out, err = d.run(ctx, "", "list networks", "network", "ls", "--filter", filter, "--format", "{{.Name}}")
	if err != nil {
		return nil, err
	}
	for _, network := range lines(out) {
		if !strings.HasPrefix(network, NetworkPrefix) {
			continue
		}
		d.logger.Info("removing network", "network", network)
		if _, err := d.run(ctx, "", "remove network "+network, "network", "rm", network); err != nil {
			return nil, err
		}
	}
	return containers, nil
}

func lines(out string) []string {
	result := []string{}
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return result
}
