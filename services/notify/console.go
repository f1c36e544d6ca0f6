package notifysvc

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/hcmut-hub/tkb/core"
)

// SentNotifications collects everything the console service "sent";
// inspected by tests.
var (
	SentNotifications = make([]core.Notification, 0)
	mu                sync.Mutex
)

type consoleService struct {
	prefix        string
	disableOutput bool
}

var _ core.NotificationService = (*consoleService)(nil)

// NewConsoleService prints notifications to the log instead of pushing
// them anywhere; used in debug mode and in tests.
func NewConsoleService(conf *core.Config) core.NotificationService {
	return &consoleService{
		prefix:        "[" + conf.AppName + "] ",
		disableOutput: conf.TestMode,
	}
}

func (svc consoleService) SendNotifications(notifications ...*core.Notification) {
	for _, n := range notifications {
		n := n
		go svc.send(n)
	}
}

func (svc consoleService) send(n *core.Notification) {
	mu.Lock()
	SentNotifications = append(SentNotifications, *n)
	mu.Unlock()

	if svc.disableOutput {
		return
	}
	keys := make([]string, 0, len(n.Fields))
	for k := range n.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]string, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, fmt.Sprintf("%s=%s", k, n.Fields[k]))
	}
	log.Printf("%s%s: %s %s", svc.prefix, n.Event, n.Message, strings.Join(fields, " "))
}
