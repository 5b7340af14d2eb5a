package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/eghc/internal/domain"
	m "github.com/mouse-blink/eghc/internal/model"
)

func TestInspectCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.InspectArgs
	}{
		{
			name: "file only",
			args: []string{"inspect", "components/Counter.egh"},
			want: domain.InspectArgs{Path: "components/Counter.egh"},
		},
		{
			name: "explicit id",
			args: []string{"inspect", "--id", "ui/Counter", "components/Counter.egh"},
			want: domain.InspectArgs{Path: "components/Counter.egh", ID: "ui/Counter"},
		},
		{
			name: "root",
			args: []string{"inspect", "--root", "components", "components/ui/Counter.egh"},
			want: domain.InspectArgs{Path: "components/ui/Counter.egh", Root: "components"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, mockWorkflow := setupMocks(t, m.DefaultConfig(), newInspectCmd())

			mockWorkflow.EXPECT().Inspect(mock.Anything, tt.want).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestInspectCmd_RequiresOneFile(t *testing.T) {
	cmd, _ := setupMocks(t, m.DefaultConfig(), newInspectCmd())

	cmd.SetArgs([]string{"inspect"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
