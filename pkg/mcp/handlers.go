package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vidostudy/vido/pkg/study"
	"github.com/vidostudy/vido/pkg/timecode"
	"github.com/vidostudy/vido/pkg/youtube"
)

// RegisterPingTool registers the simple ping tool.
func RegisterPingTool(s *server.MCPServer) {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Responds with 'pong' to check if the Vido MCP server is alive."),
	)
	s.AddTool(pingTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("pong_vido"), nil
	})
}

// RegisterCreateFolderTool registers the create_folder tool.
func RegisterCreateFolderTool(s *server.MCPServer, store *study.Store) {
	createFolderTool := mcp.NewTool("create_folder",
		mcp.WithDescription("Creates a new folder for saved videos."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name for the new folder.")),
		mcp.WithString("color", mcp.DefaultString("Blue"), mcp.Description("Palette color name (unknown names fall back to the default).")),
		mcp.WithString("icon", mcp.Description("Optional icon name or glyph.")),
	)
	s.AddTool(createFolderTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, nameOk := request.Params.Arguments["name"].(string)
		if !nameOk || name == "" {
			return mcp.NewToolResultError("'name' parameter is required and must be a non-empty string."), nil
		}
		color, _ := request.Params.Arguments["color"].(string)
		icon, _ := request.Params.Arguments["icon"].(string)

		id, err := store.CreateFolder(ctx, study.CreateFolderRequest{Name: name, Color: color, Icon: icon})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create folder: %v", err)), nil
		}

		folder, err := store.GetFolder(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to read back created folder: %v", err)), nil
		}

		return jsonResult(folder)
	})
}

// RegisterListFoldersTool registers the list_folders tool.
func RegisterListFoldersTool(s *server.MCPServer, store *study.Store) {
	listFoldersTool := mcp.NewTool("list_folders",
		mcp.WithDescription("Lists all folders."),
	)
	s.AddTool(listFoldersTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folders, err := store.Folders(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list folders: %v", err)), nil
		}
		if len(folders) == 0 {
			return mcp.NewToolResultText("[]"), nil
		}
		return jsonResult(folders)
	})
}

// RegisterDeleteFolderTool registers the delete_folder tool. Deletion is a
// tree delete: the folder's videos, moments, and notes go with it.
func RegisterDeleteFolderTool(s *server.MCPServer, store *study.Store) {
	deleteFolderTool := mcp.NewTool("delete_folder",
		mcp.WithDescription("Deletes a folder together with all videos, moments, and notes filed under it."),
		mcp.WithString("id", mcp.Required(), mcp.Description("The id of the folder to delete.")),
	)
	s.AddTool(deleteFolderTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, idOk := request.Params.Arguments["id"].(string)
		if !idOk || id == "" {
			return mcp.NewToolResultError("'id' parameter is required."), nil
		}

		err := store.DeleteFolderTree(ctx, id)
		if err != nil {
			if errors.Is(err, study.ErrNotFound) {
				return mcp.NewToolResultText(fmt.Sprintf("Folder '%s' not found, nothing to delete.", id)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete folder '%s': %v", id, err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Folder '%s' and its contents deleted successfully.", id)), nil
	})
}

// RegisterSaveVideoTool registers the save_video tool.
func RegisterSaveVideoTool(s *server.MCPServer, store *study.Store) {
	saveVideoTool := mcp.NewTool("save_video",
		mcp.WithDescription("Saves a video URL into a folder. The video id is extracted from the URL; invalid URLs are rejected."),
		mcp.WithString("url", mcp.Required(), mcp.Description("The video URL (watch?v=, youtu.be/, or embed/ shapes).")),
		mcp.WithString("folder_id", mcp.Required(), mcp.Description("Id of the folder to file the video under.")),
		mcp.WithString("title", mcp.Description("Optional title; a placeholder is used when omitted.")),
		mcp.WithString("channel_title", mcp.Description("Optional channel name.")),
	)
	s.AddTool(saveVideoTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rawURL, urlOk := request.Params.Arguments["url"].(string)
		folderID, folderOk := request.Params.Arguments["folder_id"].(string)
		if !urlOk || rawURL == "" {
			return mcp.NewToolResultError("'url' parameter is required."), nil
		}
		if !folderOk || folderID == "" {
			return mcp.NewToolResultError("'folder_id' parameter is required."), nil
		}

		videoID, ok := youtube.ExtractVideoID(rawURL)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Could not extract a video id from '%s'; not a supported video URL.", rawURL)), nil
		}

		title, _ := request.Params.Arguments["title"].(string)
		if title == "" {
			title = fmt.Sprintf("YouTube Video %s", videoID)
		}
		channelTitle, _ := request.Params.Arguments["channel_title"].(string)
		if channelTitle == "" {
			channelTitle = "Unknown Channel"
		}

		id, err := store.SaveVideo(ctx, study.SaveVideoRequest{
			VideoID:      videoID,
			Title:        title,
			Thumbnail:    youtube.ThumbnailURL(videoID),
			ChannelTitle: channelTitle,
			Duration:     "0:00",
			URL:          rawURL,
			FolderID:     folderID,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to save video: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Video saved with id '%s'.", id)), nil
	})
}

// RegisterListVideosTool registers the list_videos tool.
func RegisterListVideosTool(s *server.MCPServer, store *study.Store) {
	listVideosTool := mcp.NewTool("list_videos",
		mcp.WithDescription("Lists saved videos, optionally filtered by folder."),
		mcp.WithString("folder_id", mcp.Description("Optional folder id to filter by.")),
	)
	s.AddTool(listVideosTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folderID, _ := request.Params.Arguments["folder_id"].(string)

		var videos []study.SavedVideo
		var err error
		if folderID != "" {
			videos, err = store.VideosByFolder(ctx, folderID)
		} else {
			videos, err = store.AllVideos(ctx)
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list videos: %v", err)), nil
		}
		if len(videos) == 0 {
			return mcp.NewToolResultText("[]"), nil
		}
		return jsonResult(videos)
	})
}

// RegisterAddMomentTool registers the add_moment tool. The timestamp is a
// display time string; it is validated before the lenient parse is trusted.
func RegisterAddMomentTool(s *server.MCPServer, store *study.Store) {
	addMomentTool := mcp.NewTool("add_moment",
		mcp.WithDescription("Bookmarks a tagged, titled moment at a timestamp within a video."),
		mcp.WithString("video_id", mcp.Required(), mcp.Description("External video id the moment belongs to.")),
		mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder context for the moment.")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Title for the moment.")),
		mcp.WithString("timestamp", mcp.Required(), mcp.Description("Time string such as '1:23' or '1:23:45'.")),
		mcp.WithString("note", mcp.Description("Optional note text.")),
		mcp.WithString("tags", mcp.Description("Optional comma-separated list of tags.")),
	)
	s.AddTool(addMomentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		videoID, videoOk := request.Params.Arguments["video_id"].(string)
		folderID, folderOk := request.Params.Arguments["folder_id"].(string)
		title, titleOk := request.Params.Arguments["title"].(string)
		timestampStr, tsOk := request.Params.Arguments["timestamp"].(string)

		if !videoOk || videoID == "" {
			return mcp.NewToolResultError("'video_id' parameter is required."), nil
		}
		if !folderOk || folderID == "" {
			return mcp.NewToolResultError("'folder_id' parameter is required."), nil
		}
		if !titleOk || title == "" {
			return mcp.NewToolResultError("'title' parameter is required."), nil
		}
		if !tsOk || !timecode.ValidateTimeFormat(timestampStr) {
			return mcp.NewToolResultError(fmt.Sprintf("'timestamp' must be a time string like '1:23' or '1:23:45', got '%s'.", timestampStr)), nil
		}

		note, _ := request.Params.Arguments["note"].(string)
		tagsStr, _ := request.Params.Arguments["tags"].(string)

		id, err := store.SaveMoment(ctx, study.SaveMomentRequest{
			VideoID:   videoID,
			Timestamp: timecode.ParseTimeToSeconds(timestampStr),
			Title:     title,
			Note:      note,
			Tags:      parseTags(tagsStr),
			FolderID:  folderID,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to save moment: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Moment saved with id '%s' at %s.", id, timecode.FormatTime(float64(timecode.ParseTimeToSeconds(timestampStr))))), nil
	})
}

// RegisterListMomentsTool registers the list_moments tool.
func RegisterListMomentsTool(s *server.MCPServer, store *study.Store) {
	listMomentsTool := mcp.NewTool("list_moments",
		mcp.WithDescription("Lists the moments recorded for a video, sorted ascending by timestamp."),
		mcp.WithString("video_id", mcp.Required(), mcp.Description("External video id.")),
	)
	s.AddTool(listMomentsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		videoID, videoOk := request.Params.Arguments["video_id"].(string)
		if !videoOk || videoID == "" {
			return mcp.NewToolResultError("'video_id' parameter is required."), nil
		}

		moments, err := store.MomentsByVideo(ctx, videoID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list moments: %v", err)), nil
		}
		if len(moments) == 0 {
			return mcp.NewToolResultText("[]"), nil
		}
		return jsonResult(moments)
	})
}

// RegisterAddNoteTool registers the add_note tool.
func RegisterAddNoteTool(s *server.MCPServer, store *study.Store) {
	addNoteTool := mcp.NewTool("add_note",
		mcp.WithDescription("Attaches a free-text note to a video, optionally anchored to a timestamp."),
		mcp.WithString("video_id", mcp.Required(), mcp.Description("External video id the note belongs to.")),
		mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder context for the note.")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note text; must be non-empty.")),
		mcp.WithString("timestamp", mcp.Description("Optional time string anchor such as '1:23'.")),
	)
	s.AddTool(addNoteTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		videoID, videoOk := request.Params.Arguments["video_id"].(string)
		folderID, folderOk := request.Params.Arguments["folder_id"].(string)
		content, contentOk := request.Params.Arguments["content"].(string)

		if !videoOk || videoID == "" {
			return mcp.NewToolResultError("'video_id' parameter is required."), nil
		}
		if !folderOk || folderID == "" {
			return mcp.NewToolResultError("'folder_id' parameter is required."), nil
		}
		if !contentOk || content == "" {
			return mcp.NewToolResultError("'content' parameter is required and must be non-empty."), nil
		}

		req := study.SaveNoteRequest{
			VideoID:  videoID,
			Content:  content,
			FolderID: folderID,
		}
		if timestampStr, ok := request.Params.Arguments["timestamp"].(string); ok && timestampStr != "" {
			if !timecode.ValidateTimeFormat(timestampStr) {
				return mcp.NewToolResultError(fmt.Sprintf("'timestamp' must be a time string like '1:23', got '%s'.", timestampStr)), nil
			}
			seconds := timecode.ParseTimeToSeconds(timestampStr)
			req.Timestamp = &seconds
		}

		id, err := store.SaveNote(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to save note: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Note saved with id '%s'.", id)), nil
	})
}

// RegisterListNotesTool registers the list_notes tool.
func RegisterListNotesTool(s *server.MCPServer, store *study.Store) {
	listNotesTool := mcp.NewTool("list_notes",
		mcp.WithDescription("Lists the notes attached to a video."),
		mcp.WithString("video_id", mcp.Required(), mcp.Description("External video id.")),
	)
	s.AddTool(listNotesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		videoID, videoOk := request.Params.Arguments["video_id"].(string)
		if !videoOk || videoID == "" {
			return mcp.NewToolResultError("'video_id' parameter is required."), nil
		}

		notes, err := store.NotesByVideo(ctx, videoID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list notes: %v", err)), nil
		}
		if len(notes) == 0 {
			return mcp.NewToolResultText("[]"), nil
		}
		return jsonResult(notes)
	})
}

// RegisterExportDataTool registers the export_data tool.
func RegisterExportDataTool(s *server.MCPServer, store *study.Store) {
	exportDataTool := mcp.NewTool("export_data",
		mcp.WithDescription("Exports the full store (folders, videos, notes, moments) as a single JSON backup document."),
	)
	s.AddTool(exportDataTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		backup, err := store.Export(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to export data: %v", err)), nil
		}
		return jsonResult(backup)
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}
