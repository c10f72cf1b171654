// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package seed

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kdomanski/iso9660"
)

const volumeID = "cidata"

// Spec describes a single seed image build.
type Spec struct {
	// Guest user that gets the SSH keys.
	User string

	// Guest hostname for the meta-data.
	Hostname string

	// Output path of the seed ISO.
	Output string

	// Files in authorized_keys format read instead of querying the
	// ssh-agent. Empty means use the agent.
	KeyFiles []string
}

// Build generates the cloud-init files and writes the seed ISO.
//
// The intermediate user-data and meta-data files live in a temporary
// directory that is removed on all exit paths. The image itself is built
// with cloud-localds if present, since that is what cloud-init ships, and
// written directly otherwise.
func Build(ctx context.Context, spec *Spec) error {
	keys, err := collectKeys(spec.KeyFiles)
	if err != nil {
		return err
	}

	userData := NewUserData(spec.User, keys)

	userDataBytes, err := userData.Render()
	if err != nil {
		return err
	}

	metaData := NewMetaData(spec.Hostname)

	metaDataBytes, err := metaData.Render()
	if err != nil {
		return err
	}

	localds, err := exec.LookPath("cloud-localds")
	if err != nil {
		slog.Debug("cloud-localds not found, writing ISO directly")
		return WriteISO(spec.Output, userDataBytes, metaDataBytes)
	}

	return runLocalDS(ctx, localds, spec.Output, userDataBytes, metaDataBytes)
}

func collectKeys(keyFiles []string) ([]string, error) {
	if len(keyFiles) == 0 {
		return AgentKeys()
	}

	var keys []string

	for _, file := range keyFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read key file: %w", err)
		}

		fileKeys, err := ParseAuthorizedKeys(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		keys = append(keys, fileKeys...)
	}

	return keys, nil
}

func runLocalDS(
	ctx context.Context,
	localds, output string,
	userData, metaData []byte,
) error {
	workDir, err := os.MkdirTemp("", "isorun-seed")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer removeWorkDir(workDir)

	userDataPath := filepath.Join(workDir, "user-data")

	err = os.WriteFile(userDataPath, userData, 0o600)
	if err != nil {
		return fmt.Errorf("write user-data: %w", err)
	}

	metaDataPath := filepath.Join(workDir, "meta-data")

	err = os.WriteFile(metaDataPath, metaData, 0o600)
	if err != nil {
		return fmt.Errorf("write meta-data: %w", err)
	}

	cmd := exec.CommandContext(ctx, localds, output, userDataPath, metaDataPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if err != nil {
		return fmt.Errorf("cloud-localds: %w", err)
	}

	return nil
}

// WriteISO writes a cloud-init seed ISO with the given user-data and
// meta-data contents.
func WriteISO(path string, userData, metaData []byte) (retErr error) {
	writer, err := iso9660.NewWriter()
	if err != nil {
		return fmt.Errorf("new iso writer: %w", err)
	}

	defer func() {
		err := writer.Cleanup()
		if retErr == nil && err != nil {
			retErr = fmt.Errorf("cleanup iso writer: %w", err)
		}
	}()

	err = writer.AddFile(bytes.NewReader(userData), "user-data")
	if err != nil {
		return fmt.Errorf("add user-data: %w", err)
	}

	err = writer.AddFile(bytes.NewReader(metaData), "meta-data")
	if err != nil {
		return fmt.Errorf("add meta-data: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create iso file: %w", err)
	}

	err = writer.WriteTo(file, volumeID)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("write iso: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close iso file: %w", err)
	}

	return nil
}

func removeWorkDir(path string) {
	err := os.RemoveAll(path)
	if err != nil {
		slog.Error("Failed to remove work dir",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}
