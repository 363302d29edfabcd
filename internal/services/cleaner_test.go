package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/simclean/internal/domain"
	"github.com/renato0307/simclean/internal/ports"
	portsmocks "github.com/renato0307/simclean/internal/ports/mocks"
)

const (
	devicesDir = "/Users/me/Library/Developer/CoreSimulator/Devices"
	iOS17      = "com.apple.CoreSimulator.SimRuntime.iOS-17-0"
)

type testDeps struct {
	deviceManager *portsmocks.MockDeviceManager
	diskUsage     *portsmocks.MockDiskUsage
	out           *bytes.Buffer
	prompter      *portsmocks.MockDevicePrompter
	workspace     *portsmocks.MockWorkspace
}

func newTestService(t *testing.T) (*CleanerService, testDeps) {
	deps := testDeps{
		deviceManager: portsmocks.NewMockDeviceManager(t),
		diskUsage:     portsmocks.NewMockDiskUsage(t),
		out:           &bytes.Buffer{},
		prompter:      portsmocks.NewMockDevicePrompter(t),
		workspace:     portsmocks.NewMockWorkspace(t),
	}
	service := NewCleanerService(deps.deviceManager, deps.diskUsage, deps.prompter, deps.workspace, deps.out)
	return service, deps
}

func twoDevices() []domain.Device {
	return []domain.Device{
		{
			DeviceType: "com.apple.CoreSimulator.SimDeviceType.iPhone-15",
			Name:       "iPhone 15",
			Runtime:    iOS17,
			State:      "Shutdown",
			UDID:       "AAA",
		},
		{
			DeviceType: "com.apple.CoreSimulator.SimDeviceType.iPad-Air",
			Name:       "iPad Air",
			Runtime:    iOS17,
			State:      "Booted",
			UDID:       "BBB",
		},
	}
}

func TestClean_EndToEndRecreate(t *testing.T) {
	service, deps := newTestService(t)
	before := twoDevices()
	after := []domain.Device{
		{DeviceType: before[0].DeviceType, Name: "iPhone 15", Runtime: iOS17, State: "Shutdown", UDID: "NEW"},
		before[1],
	}

	deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Times(2)
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(before, nil).Once()
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(after, nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, devicesDir+"/AAA").Return("1.1G", nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, devicesDir+"/BBB").Return("2.2G", nil).Times(2)
	deps.diskUsage.EXPECT().Size(mock.Anything, devicesDir+"/NEW").Return(domain.DirectoryNotFound, nil).Once()

	selectCall := deps.prompter.EXPECT().SelectDevices(mock.Anything).Return([]int{0}, true, nil).Once()
	deleteCall := deps.deviceManager.EXPECT().DeleteDevice(mock.Anything, "AAA").Return(nil).Once()
	confirmCall := deps.prompter.EXPECT().ConfirmRecreate().Return(true, nil).Once()
	createCall := deps.deviceManager.EXPECT().
		CreateDevice(mock.Anything, "iPhone 15", "com.apple.CoreSimulator.SimDeviceType.iPhone-15", iOS17).
		Return("NEW", nil).Once()
	mock.InOrder(selectCall, deleteCall, confirmCall, createCall)

	result, err := service.Clean(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Cancelled)
	assert.True(t, result.Recreated)
	require.Len(t, result.Victims, 1)
	assert.Equal(t, "AAA", result.Victims[0].UDID)
	assert.Equal(t, 2, result.Devices.Len())

	expected := "\nDeleting device data:\n" +
		"  iPhone 15 [iOS-17-0]...\n" +
		"Recreating following devices:\n" +
		"  iPhone 15 [iOS-17-0]...\n" +
		"Device data cleared. \nNew devices state:\n\n" +
		domain.ListingRow(after[0], domain.DirectoryNotFound) + "\n" +
		domain.ListingRow(after[1], "2.2G") + "\n"
	assert.Equal(t, expected, deps.out.String())
	assert.Contains(t, deps.out.String(), "iOS-17-0")
}

func TestClean_SelectionRowsPassedToPrompter(t *testing.T) {
	service, deps := newTestService(t)
	devices := twoDevices()

	deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Once()
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(devices, nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, devicesDir+"/AAA").Return("1.1G", nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, devicesDir+"/BBB").Return("2.2G", nil).Once()
	deps.prompter.EXPECT().SelectDevices([]string{
		domain.SelectionRow(devices[0], "1.1G"),
		domain.SelectionRow(devices[1], "2.2G"),
	}).Return(nil, false, nil).Once()

	result, err := service.Clean(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Cancelled)
}

func TestClean_CancelledSelectionDoesNothing(t *testing.T) {
	tests := []struct {
		name      string
		selected  []int
		confirmed bool
	}{
		{"quit", nil, false},
		{"empty submit", []int{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)

			deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Once()
			deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(twoDevices(), nil).Once()
			deps.diskUsage.EXPECT().Size(mock.Anything, mock.Anything).Return("1.0G", nil)
			deps.prompter.EXPECT().SelectDevices(mock.Anything).Return(tt.selected, tt.confirmed, nil).Once()

			result, err := service.Clean(context.Background())

			require.NoError(t, err)
			assert.True(t, result.Cancelled)
			assert.Empty(t, result.Victims)
			assert.Empty(t, deps.out.String())
			deps.deviceManager.AssertNotCalled(t, "DeleteDevice", mock.Anything, mock.Anything)
			deps.deviceManager.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			deps.prompter.AssertNotCalled(t, "ConfirmRecreate")
		})
	}
}

func TestClean_DeclineRecreateSkipsCreate(t *testing.T) {
	service, deps := newTestService(t)
	devices := append(twoDevices(), domain.Device{
		DeviceType: "com.apple.CoreSimulator.SimDeviceType.Apple-TV",
		Name:       "Apple TV",
		Runtime:    "com.apple.CoreSimulator.SimRuntime.tvOS-17-0",
		State:      "Shutdown",
		UDID:       "CCC",
	})

	deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Once()
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(devices, nil).Once()
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(devices[1:2], nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, mock.Anything).Return("1.0G", nil)
	deps.prompter.EXPECT().SelectDevices(mock.Anything).Return([]int{0, 2}, true, nil).Once()

	deleteFirst := deps.deviceManager.EXPECT().DeleteDevice(mock.Anything, "AAA").Return(nil).Once()
	deleteSecond := deps.deviceManager.EXPECT().DeleteDevice(mock.Anything, "CCC").Return(nil).Once()
	confirm := deps.prompter.EXPECT().ConfirmRecreate().Return(false, nil).Once()
	mock.InOrder(deleteFirst, deleteSecond, confirm)

	result, err := service.Clean(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Recreated)
	assert.Len(t, result.Victims, 2)
	deps.deviceManager.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.NotContains(t, deps.out.String(), "Recreating")
	assert.Contains(t, deps.out.String(), "  Apple TV [tvOS-17-0]...\n")
}

func TestClean_RecreatesEveryVictimWithOriginalRecord(t *testing.T) {
	service, deps := newTestService(t)
	devices := twoDevices()

	deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Times(2)
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(devices, nil).Once()
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(nil, nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, mock.Anything).Return("1.0G", nil)
	deps.prompter.EXPECT().SelectDevices(mock.Anything).Return([]int{1, 0}, true, nil).Once()
	deps.deviceManager.EXPECT().DeleteDevice(mock.Anything, "BBB").Return(nil).Once()
	deps.deviceManager.EXPECT().DeleteDevice(mock.Anything, "AAA").Return(nil).Once()
	deps.prompter.EXPECT().ConfirmRecreate().Return(true, nil).Once()
	for _, d := range devices {
		deps.deviceManager.EXPECT().CreateDevice(mock.Anything, d.Name, d.DeviceType, d.Runtime).Return("new-"+d.UDID, nil).Once()
	}

	result, err := service.Clean(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Recreated)
	assert.Equal(t, 0, result.Devices.Len())
}

func TestClean_DeleteFailureStops(t *testing.T) {
	service, deps := newTestService(t)

	deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Once()
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(twoDevices(), nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, mock.Anything).Return("1.0G", nil)
	deps.prompter.EXPECT().SelectDevices(mock.Anything).Return([]int{0, 1}, true, nil).Once()
	deps.deviceManager.EXPECT().DeleteDevice(mock.Anything, "AAA").Return(ports.ErrCommandFailed).Once()

	result, err := service.Clean(context.Background())

	require.ErrorIs(t, err, ports.ErrCommandFailed)
	assert.Nil(t, result)
	deps.deviceManager.AssertNotCalled(t, "DeleteDevice", mock.Anything, "BBB")
	deps.prompter.AssertNotCalled(t, "ConfirmRecreate")
}

func TestClean_CreateFailureStops(t *testing.T) {
	service, deps := newTestService(t)

	deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Times(2)
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(twoDevices(), nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, mock.Anything).Return("1.0G", nil)
	deps.prompter.EXPECT().SelectDevices(mock.Anything).Return([]int{0}, true, nil).Once()
	deps.deviceManager.EXPECT().DeleteDevice(mock.Anything, "AAA").Return(nil).Once()
	deps.prompter.EXPECT().ConfirmRecreate().Return(true, nil).Once()
	deps.deviceManager.EXPECT().CreateDevice(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", ports.ErrCommandFailed).Once()

	_, err := service.Clean(context.Background())

	require.ErrorIs(t, err, ports.ErrCommandFailed)
}

func TestClean_WorkspaceFailure(t *testing.T) {
	service, deps := newTestService(t)

	deps.workspace.EXPECT().Enter().Return("", errors.New("no home directory")).Once()

	_, err := service.Clean(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no home directory")
	deps.deviceManager.AssertNotCalled(t, "ListDevices", mock.Anything)
}

func TestClean_MalformedDeviceList(t *testing.T) {
	service, deps := newTestService(t)

	deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Once()
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(nil, domain.ErrMalformedDeviceList).Once()

	_, err := service.Clean(context.Background())

	require.ErrorIs(t, err, domain.ErrMalformedDeviceList)
	deps.prompter.AssertNotCalled(t, "SelectDevices", mock.Anything)
}

func TestClean_PromptFailure(t *testing.T) {
	service, deps := newTestService(t)

	deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Once()
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(twoDevices(), nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, mock.Anything).Return("1.0G", nil)
	deps.prompter.EXPECT().SelectDevices(mock.Anything).Return(nil, false, errors.New("not a terminal")).Once()

	_, err := service.Clean(context.Background())

	require.Error(t, err)
	deps.deviceManager.AssertNotCalled(t, "DeleteDevice", mock.Anything, mock.Anything)
}

func TestSelectVictims_RejectsOutOfRangeIndex(t *testing.T) {
	service, deps := newTestService(t)

	deps.diskUsage.EXPECT().Size(mock.Anything, mock.Anything).Return("1.0G", nil)
	deps.prompter.EXPECT().SelectDevices(mock.Anything).Return([]int{5}, true, nil).Once()

	_, err := service.SelectVictims(context.Background(), devicesDir, domain.NewDeviceList(twoDevices()))

	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestList_PrintsEveryDevice(t *testing.T) {
	service, deps := newTestService(t)
	devices := twoDevices()

	deps.workspace.EXPECT().Enter().Return(devicesDir, nil).Once()
	deps.deviceManager.EXPECT().ListDevices(mock.Anything).Return(devices, nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, devicesDir+"/AAA").Return("1.1G", nil).Once()
	deps.diskUsage.EXPECT().Size(mock.Anything, devicesDir+"/BBB").Return(domain.DirectoryNotFound, nil).Once()

	list, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t,
		domain.ListingRow(devices[0], "1.1G")+"\n"+domain.ListingRow(devices[1], domain.DirectoryNotFound)+"\n",
		deps.out.String())
}

func TestPrintListing_SizeFailure(t *testing.T) {
	service, deps := newTestService(t)

	deps.diskUsage.EXPECT().Size(mock.Anything, mock.Anything).Return("", ports.ErrCommandFailed).Once()

	err := service.PrintListing(context.Background(), devicesDir, domain.NewDeviceList(twoDevices()))

	require.ErrorIs(t, err, ports.ErrCommandFailed)
}
