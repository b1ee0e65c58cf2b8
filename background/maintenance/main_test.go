package maintenance

import (
	"os"
	"testing"

	"github.com/neighborly/neighborly-api/background"
)

var testWorker *MaintenanceWorker

func TestMain(m *testing.M) {
	testWorker = NewMaintenanceWorker("test", background.Background{})
	testWorker.Register()
	os.Exit(m.Run())
}
