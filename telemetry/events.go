package telemetry

// This file contains all the telemetry event constructors.
// If you want to add an event, first make sure it appears in this file.

type CommandInfo struct {
	Name      string
	LocalArgs map[string]string
}

func localArgsToProperties(cmdInfo CommandInfo) map[string]interface{} {
	properties := map[string]interface{}{}
	for key, value := range cmdInfo.LocalArgs {
		properties["cmd.flag."+key] = value
	}
	return properties
}

func errorToProperties(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	return map[string]interface{}{
		"error": err.Error(),
	}
}

func CreateSetupEvent() Event {
	return Event{
		Object: "cli-setup",
	}
}

func CreateRepoEvent(cmdInfo CommandInfo, err error) Event {
	properties := localArgsToProperties(cmdInfo)
	for k, v := range errorToProperties(err) {
		properties[k] = v
	}
	return Event{
		Object:     "cli-repo",
		Action:     cmdInfo.Name,
		Properties: properties,
	}
}

func CreateCodeEvent(cmdInfo CommandInfo, err error) Event {
	properties := localArgsToProperties(cmdInfo)
	for k, v := range errorToProperties(err) {
		properties[k] = v
	}
	return Event{
		Object:     "cli-code",
		Action:     cmdInfo.Name,
		Properties: properties,
	}
}

func CreateChatEvent(turns int) Event {
	return Event{
		Object: "cli-chat",
		Properties: map[string]interface{}{
			"turns": turns,
		},
	}
}

func CreateFrontendEvent(cmdInfo CommandInfo, err error) Event {
	properties := localArgsToProperties(cmdInfo)
	for k, v := range errorToProperties(err) {
		properties[k] = v
	}
	return Event{
		Object:     "cli-frontend",
		Action:     cmdInfo.Name,
		Properties: properties,
	}
}
