package server

import "html/template"

// Version is the fixed version string shown in the page footer.
const Version = "1.0.0"

// pageTemplate renders the task list. It receives the ordered tasks
// explicitly; there is no implicit lookup inside the template.
var pageTemplate = template.Must(template.New("index").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html>
<head>
    <title>To-Do App</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 600px;
            margin: 50px auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        h1 {
            color: #333;
            text-align: center;
        }
        .container {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .task-form {
            display: flex;
            gap: 10px;
            margin-bottom: 20px;
        }
        input[type="text"] {
            flex: 1;
            padding: 10px;
            border: 1px solid #ddd;
            border-radius: 4px;
        }
        button {
            padding: 10px 20px;
            background-color: #007bff;
            color: white;
            border: none;
            border-radius: 4px;
            cursor: pointer;
        }
        button:hover {
            background-color: #0056b3;
        }
        .task-list {
            list-style: none;
            padding: 0;
        }
        .task-item {
            padding: 12px;
            margin-bottom: 8px;
            background: #f8f9fa;
            border-radius: 4px;
            display: flex;
            justify-content: space-between;
            align-items: center;
        }
        .delete-btn {
            background-color: #dc3545;
            padding: 5px 10px;
            font-size: 12px;
        }
        .delete-btn:hover {
            background-color: #c82333;
        }
        .version {
            text-align: center;
            color: #666;
            margin-top: 20px;
            font-size: 14px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>&#128221; To-Do List</h1>

        <form class="task-form" method="POST" action="/add">
            <input type="text" name="task" placeholder="Enter a new task" required>
            <button type="submit">Add Task</button>
        </form>

        <ul class="task-list">
            {{range $i, $task := .Tasks}}
            <li class="task-item">
                <span>{{$task}}</span>
                <form method="POST" action="/delete/{{$i}}" style="margin: 0;">
                    <button type="submit" class="delete-btn">Delete</button>
                </form>
            </li>
            {{end}}
        </ul>

        {{if not .Tasks}}
        <p style="text-align: center; color: #999;">No tasks yet. Add one above!</p>
        {{end}}

        <div class="version">Version {{.Version}}</div>
    </div>
</body>
</html>
`
