package remindcli

import (
	"time"

	"github.com/remindctl/remindctl/common"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

// Add creates a reminder due after delay and returns it.
func (c *Client) Add(message string, delay time.Duration) (*remindlib.Reminder, error) {
	var res common.AddResult
	err := c.invoke(common.MethodReminderAdd, &common.AddParams{
		Message: message,
		DelayMS: delay.Milliseconds(),
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res.Reminder, nil
}

// Remove deletes a reminder by id. It reports whether the reminder
// existed; removing an unknown id is not an error.
func (c *Client) Remove(id string) (bool, error) {
	var res common.RemoveResult
	if err := c.invoke(common.MethodReminderRemove, &common.RemoveParams{ID: id}, &res); err != nil {
		return false, err
	}
	return res.Removed, nil
}

// List returns every reminder in insertion order.
func (c *Client) List() ([]remindlib.Reminder, error) {
	var res common.ListResult
	if err := c.invoke(common.MethodReminderList, &struct{}{}, &res); err != nil {
		return nil, err
	}
	return res.Reminders, nil
}

// Partition returns the active/expired split. A nil nowMS uses the
// daemon's clock.
func (c *Client) Partition(nowMS *int64) (*common.PartitionResult, error) {
	var res common.PartitionResult
	if err := c.invoke(common.MethodReminderPartition, &common.PartitionParams{NowMS: nowMS}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Poke asks the daemon for an immediate catch-up tick.
func (c *Client) Poke() error {
	return c.invoke(common.MethodDaemonPoke, &struct{}{}, nil)
}

// Stop asks the daemon to shut down. With flush, the daemon clears its
// in-memory collection and the persisted blob before exiting.
func (c *Client) Stop(flush bool) error {
	return c.invoke(common.MethodDaemonStop, &common.StopParams{Flush: flush}, nil)
}

// Version returns the daemon's build information.
func (c *Client) Version() (*common.VersionResult, error) {
	var res common.VersionResult
	if err := c.invoke(common.MethodSystemVersion, &struct{}{}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
